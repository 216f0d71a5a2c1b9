package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/application/usecases/queries"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/auth"
	"zapshift/internal/pkg/errs"
)

// In-memory unit of work. Command handlers only see the composed UoW
// interfaces, so routing tests need no database.

type memoryStore struct {
	parcels map[kernel.UUID]*parcel.Parcel
	users   map[string]*user.User
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		parcels: make(map[kernel.UUID]*parcel.Parcel),
		users:   make(map[string]*user.User),
	}
}

type memoryParcelRepo struct{ store *memoryStore }

func (r memoryParcelRepo) Add(_ context.Context, aggregate *parcel.Parcel) error {
	r.store.parcels[aggregate.ID()] = aggregate
	return nil
}

func (r memoryParcelRepo) Update(_ context.Context, aggregate *parcel.Parcel) error {
	r.store.parcels[aggregate.ID()] = aggregate
	return nil
}

func (r memoryParcelRepo) Get(_ context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	found, ok := r.store.parcels[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("parcel", id.String())
	}
	return found, nil
}

func (r memoryParcelRepo) GetByTrackingCode(_ context.Context, code kernel.TrackingCode) (*parcel.Parcel, error) {
	for _, p := range r.store.parcels {
		if p.TrackingCode().IsEqual(code) {
			return p, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("parcel", code.String())
}

type memoryUserRepo struct{ store *memoryStore }

func (r memoryUserRepo) Add(_ context.Context, aggregate *user.User) error {
	r.store.users[aggregate.Email()] = aggregate
	return nil
}

func (r memoryUserRepo) Update(_ context.Context, aggregate *user.User) error {
	r.store.users[aggregate.Email()] = aggregate
	return nil
}

func (r memoryUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	found, ok := r.store.users[email]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", email)
	}
	return found, nil
}

type memoryUoW struct{ store *memoryStore }

func (u memoryUoW) Begin(context.Context) error    { return nil }
func (u memoryUoW) Commit(context.Context) error   { return nil }
func (u memoryUoW) Rollback(context.Context) error { return nil }

func (u memoryUoW) ParcelRepository() ports.ParcelRepository {
	return memoryParcelRepo{store: u.store}
}

func (u memoryUoW) UserRepository() ports.UserRepository {
	return memoryUserRepo{store: u.store}
}

type memoryParcelUoWFactory struct{ store *memoryStore }

func (f memoryParcelUoWFactory) Create() commands.ParcelUoW {
	return memoryUoW{store: f.store}
}

type memoryUserUoWFactory struct{ store *memoryStore }

func (f memoryUserUoWFactory) Create() commands.UserUoW {
	return memoryUoW{store: f.store}
}

// storeRoleResolver resolves roles from the in-memory user set, failing
// closed for unknown emails the way the real query handler does.
type storeRoleResolver struct{ store *memoryStore }

func (r storeRoleResolver) Handle(_ context.Context, query queries.GetUserRoleQuery) (string, error) {
	found, ok := r.store.users[query.Email()]
	if !ok {
		return "", errs.NewObjectNotFoundError("email", query.Email())
	}
	return found.Role().String(), nil
}

func newTestServer(store *memoryStore) (*Server, *echo.Echo) {
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)

	server := &Server{
		tokens:              tokens,
		createParcelHandler: commands.NewCreateParcelCommandHandler(memoryParcelUoWFactory{store: store}),
		updateStatusHandler: commands.NewUpdateDeliveryStatusCommandHandler(memoryParcelUoWFactory{store: store}),
		cashOutHandler:      commands.NewCashOutParcelCommandHandler(memoryParcelUoWFactory{store: store}),
		registerUserHandler: commands.NewRegisterUserCommandHandler(memoryUserUoWFactory{store: store}),
		getUserRoleHandler:  storeRoleResolver{store: store},
	}

	e := echo.New()
	server.RegisterRoutes(e, 5*time.Second)

	return server, e
}

func bearerToken(t *testing.T, server *Server, email string) string {
	t.Helper()
	token, err := server.tokens.GenerateToken(email)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestServer_Health(t *testing.T) {
	_, e := newTestServer(newMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Login_FirstSignInCreatesUser(t *testing.T) {
	store := newMemoryStore()
	_, e := newTestServer(store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"merchant@zap.test","displayName":"Merchant"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
	assert.Contains(t, rec.Body.String(), `"role":"user"`)

	created, ok := store.users["merchant@zap.test"]
	require.True(t, ok)
	assert.Equal(t, user.RoleUser, created.Role())
}

func TestServer_Login_MissingEmail(t *testing.T) {
	_, e := newTestServer(newMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"displayName":"No Email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_CreateParcel_RequiresToken(t *testing.T) {
	_, e := newTestServer(newMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parcels",
		strings.NewReader(`{"senderEmail":"merchant@zap.test"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_CreateParcel_RejectsGarbageToken(t *testing.T) {
	_, e := newTestServer(newMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parcels", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_CreateParcel_Success(t *testing.T) {
	store := newMemoryStore()
	server, e := newTestServer(store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parcels", strings.NewReader(
		`{"senderEmail":"merchant@zap.test","receiverName":"Rahim","receiverAddress":"12 Gulshan Ave","weightGrams":1200,"costAmount":15000}`,
	))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerToken(t, server, "merchant@zap.test"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"trackingCode"`)
	assert.Contains(t, rec.Body.String(), `"deliveryStatus":"not_collected"`)
	assert.Len(t, store.parcels, 1)
}

func TestServer_CreateParcel_ValidationFailure(t *testing.T) {
	server, e := newTestServer(newMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parcels",
		strings.NewReader(`{"receiverName":"Rahim"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerToken(t, server, "merchant@zap.test"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_UpdateParcelStatus_UnknownStatus(t *testing.T) {
	server, e := newTestServer(newMemoryStore())

	req := httptest.NewRequest(http.MethodPatch,
		"/api/v1/parcels/"+kernel.NewUUID().String()+"/status",
		strings.NewReader(`{"status":"teleported"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerToken(t, server, "merchant@zap.test"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown delivery status")
}

func TestServer_UpdateParcelStatus_NotFound(t *testing.T) {
	server, e := newTestServer(newMemoryStore())

	req := httptest.NewRequest(http.MethodPatch,
		"/api/v1/parcels/"+kernel.NewUUID().String()+"/status",
		strings.NewReader(`{"status":"in_transit"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerToken(t, server, "merchant@zap.test"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_UpdateParcelStatus_InvalidID(t *testing.T) {
	server, e := newTestServer(newMemoryStore())

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/parcels/not-a-uuid/status",
		strings.NewReader(`{"status":"in_transit"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerToken(t, server, "merchant@zap.test"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_AdminRoutes_ForbiddenWithoutAdminRole(t *testing.T) {
	store := newMemoryStore()
	server, e := newTestServer(store)
	seedUser(t, store, "merchant@zap.test", user.RoleUser)

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/parcels/"+kernel.NewUUID().String()+"/cashout",
		strings.NewReader(`{"amount":15000}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerToken(t, server, "merchant@zap.test"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_AdminRoutes_ForbiddenWhenRoleUnresolvable(t *testing.T) {
	server, e := newTestServer(newMemoryStore())

	// Valid token for an email with no account. The admin gate must fail
	// closed rather than pass the caller through.
	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/parcels/"+kernel.NewUUID().String()+"/cashout",
		strings.NewReader(`{"amount":15000}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerToken(t, server, "ghost@zap.test"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_AdminRoutes_AdminPassesGate(t *testing.T) {
	store := newMemoryStore()
	server, e := newTestServer(store)
	seedUser(t, store, "admin@zap.test", user.RoleAdmin)

	// The parcel does not exist, so getting past the gate shows up as 404
	// rather than 403.
	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/parcels/"+kernel.NewUUID().String()+"/cashout",
		strings.NewReader(`{"amount":15000}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerToken(t, server, "admin@zap.test"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func seedUser(t *testing.T, store *memoryStore, email string, role user.Role) {
	t.Helper()

	seeded, err := user.NewUser(kernel.NewUUID(), email, "Seeded", time.Now().UTC())
	require.NoError(t, err)
	if role != user.RoleUser {
		require.NoError(t, seeded.ChangeRole(role))
	}
	store.users[email] = seeded
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"object not found", errs.NewObjectNotFoundError("parcel", "x"), http.StatusNotFound},
		{"parcel not found sentinel", commands.ErrParcelNotFound, http.StatusNotFound},
		{"rider not found sentinel", commands.ErrRiderNotFound, http.StatusNotFound},
		{"conflict", errs.NewConflictError("deliveryStatus", "delivered", "in_transit"), http.StatusConflict},
		{"external service", errs.NewExternalServiceError("payment processor", nil), http.StatusBadGateway},
		{"invalid value", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("email"), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}
