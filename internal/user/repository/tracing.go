package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/flukechat/fluke-backend/internal/user/domain"
)

var tracer = otel.Tracer("user-repository")

// TracingUserRepository decorates a domain.UserRepository with a span per
// storage operation.
type TracingUserRepository struct {
	inner domain.UserRepository
}

// NewTracingUserRepository wraps repo with tracing.
func NewTracingUserRepository(repo domain.UserRepository) *TracingUserRepository {
	return &TracingUserRepository{inner: repo}
}

// FindAll with tracing
func (r *TracingUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	users, err := r.inner.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("user.count", len(users)))
	return users, nil
}

// Create with tracing
func (r *TracingUserRepository) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("user.username", input.Username),
			attribute.String("user.email", input.Email),
		),
	)
	defer span.End()

	user, err := r.inner.Create(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int64("user.id", user.ID))
	return user, nil
}

// FindByID with tracing
func (r *TracingUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int64("user.id", id),
		),
	)
	defer span.End()

	user, err := r.inner.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Bool("user.found", user != nil))
	return user, nil
}

// Delete with tracing
func (r *TracingUserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.Int64("user.id", id),
		),
	)
	defer span.End()

	removed, err := r.inner.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}

	span.SetAttributes(attribute.Bool("user.removed", removed))
	return removed, nil
}
