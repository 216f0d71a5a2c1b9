package postgres_test

import (
	"context"
	"sync"

	"zapshift/internal/adapters/out/postgres/parcelrepo"
	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"
)

type funcParcelUoWFactory func() commands.ParcelUoW

func (f funcParcelUoWFactory) Create() commands.ParcelUoW { return f() }

type funcParcelRiderUoWFactory func() commands.ParcelRiderUoW

func (f funcParcelRiderUoWFactory) Create() commands.ParcelRiderUoW { return f() }

// Two requests race to assign the same rider. The row lock taken by the
// rider read serializes them: the loser re-reads the committed busy
// status and fails in the domain, so the rider ends up on exactly one
// parcel.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentAssign_SameRiderAssignedOnce() {
	ctx := context.Background()

	first := suite.createTestParcel()
	second := suite.createTestParcel()
	suite.Require().NoError(first.MarkPaid())
	suite.Require().NoError(second.MarkPaid())
	testRider := suite.createActiveRider()

	suite.seed(func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.ParcelRepository().Add(ctx, first))
		suite.Require().NoError(uow.ParcelRepository().Add(ctx, second))
		suite.Require().NoError(uow.RiderRepository().Add(ctx, testRider))
	})

	handler := commands.NewAssignRiderCommandHandler(
		funcParcelRiderUoWFactory(func() commands.ParcelRiderUoW {
			return suite.factory.Create()
		}),
	)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, parcelID := range []kernel.UUID{first.ID(), second.ID()} {
		wg.Add(1)
		go func(id kernel.UUID) {
			defer wg.Done()

			cmd, err := commands.NewAssignRiderCommand(id, testRider.ID())
			suite.Require().NoError(err)
			results <- handler.Handle(ctx, cmd)
		}(parcelID)
	}
	wg.Wait()
	close(results)

	suite.assertOneSuccessOneConflict(results)

	var assigned int64
	suite.Require().NoError(
		suite.db.Model(&parcelrepo.ParcelDTO{}).
			Where("rider_id IS NOT NULL").
			Count(&assigned).Error,
	)
	suite.Equal(int64(1), assigned)

	reloaded, err := suite.factory.Create().RiderRepository().Get(ctx, testRider.ID())
	suite.Require().NoError(err)
	suite.Equal(rider.Busy, reloaded.Status())
}

// Two requests race to cash out one delivered parcel. The parcel row lock
// serializes them and the loser sees the committed cashed_out status.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentCashOut_OnlyOneSucceeds() {
	ctx := context.Background()

	delivered := suite.createDeliveredParcel()
	suite.seed(func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.ParcelRepository().Add(ctx, delivered))
	})

	handler := commands.NewCashOutParcelCommandHandler(
		funcParcelUoWFactory(func() commands.ParcelUoW {
			return suite.factory.Create()
		}),
	)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			cmd, err := commands.NewCashOutParcelCommand(delivered.ID(), 12000)
			suite.Require().NoError(err)
			results <- handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()
	close(results)

	suite.assertOneSuccessOneConflict(results)

	var dto parcelrepo.ParcelDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", delivered.ID().Bytes()).Error)
	suite.Equal("cashed_out", dto.CashoutStatus)
}

func (suite *UnitOfWorkIntegrationTestSuite) assertOneSuccessOneConflict(results chan error) {
	var successes, conflicts int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		suite.Require().ErrorIs(err, errs.ErrConflict)
		conflicts++
	}
	suite.Equal(1, successes)
	suite.Equal(1, conflicts)
}

func (suite *UnitOfWorkIntegrationTestSuite) createDeliveredParcel() *parcel.Parcel {
	delivered := suite.createTestParcel()
	suite.Require().NoError(delivered.MarkPaid())

	testRider := suite.createActiveRider()
	suite.Require().NoError(
		delivered.AssignRider(testRider.ID(), testRider.Email(), testRider.Name()),
	)

	for _, status := range []parcel.DeliveryStatus{parcel.InTransit, parcel.Delivered} {
		_, err := delivered.ChangeDeliveryStatus(status)
		suite.Require().NoError(err)
	}
	return delivered
}

func (suite *UnitOfWorkIntegrationTestSuite) seed(write func(uow ports.UnitOfWork)) {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	write(uow)
	suite.Require().NoError(uow.Commit(ctx))
}
