// Package commands contains the business operations that modify system
// state. Every command follows the same pattern: a validated command
// object, a handler that opens a unit of work, domain mutations, and a
// single commit — so the cross-collection transitions (parcel+payment,
// parcel+rider, rider+user) are atomic by construction.
package commands

import (
	"context"

	"zapshift/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each command depends on the narrowest interface that covers
// the aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// RiderRepoFactory provides access to the rider repository within a transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// ParcelUoW manages transactions for parcel-only operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// ParcelPaymentUoW manages transactions that mark a parcel paid and
	// append the payment record together.
	ParcelPaymentUoW interface {
		TxManager
		ParcelRepoFactory
		PaymentRepoFactory
	}

	// ParcelPaymentUoWFactory creates new parcel+payment unit of work instances.
	ParcelPaymentUoWFactory interface {
		Create() ParcelPaymentUoW
	}

	// ParcelRiderUoW manages transactions that assign a rider to a parcel,
	// updating both aggregates together.
	ParcelRiderUoW interface {
		TxManager
		ParcelRepoFactory
		RiderRepoFactory
	}

	// ParcelRiderUoWFactory creates new parcel+rider unit of work instances.
	ParcelRiderUoWFactory interface {
		Create() ParcelRiderUoW
	}

	// RiderUoW manages transactions for rider-only operations.
	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	// RiderUoWFactory creates new rider unit of work instances.
	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// RiderUserUoW manages transactions that change a rider's status and
	// mutate the linked user's role together.
	RiderUserUoW interface {
		TxManager
		RiderRepoFactory
		UserRepoFactory
	}

	// RiderUserUoWFactory creates new rider+user unit of work instances.
	RiderUserUoWFactory interface {
		Create() RiderUserUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
