package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/edgard/savdobot/internal/errors"
)

func TestCode(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: apperrors.CodeUnknown},
		{name: "plain error", err: cause, want: apperrors.CodeUnknown},
		{name: "validation", err: apperrors.NewValidationError("bad args", nil), want: apperrors.CodeValidation},
		{name: "api", err: apperrors.NewAPIError("restrict failed", cause), want: apperrors.CodeAPI},
		{name: "database", err: apperrors.NewDatabaseError("insert failed", cause), want: apperrors.CodeDatabase},
		{name: "config", err: apperrors.NewConfigError("token missing", nil), want: apperrors.CodeConfig},
		{name: "unauthorized", err: apperrors.NewUnauthorizedError("not admin"), want: apperrors.CodeUnauthorized},
		{name: "precondition", err: apperrors.NewPreconditionError("not a group"), want: apperrors.CodePrecondition},
		{
			name: "wrapped with fmt",
			err:  fmt.Errorf("start trade: %w", apperrors.NewUnauthorizedError("not admin")),
			want: apperrors.CodeUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, apperrors.Code(tt.err))
		})
	}
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("timeout")
	err := apperrors.NewAPIError("failed to delete message", cause)

	require.Equal(t, "failed to delete message: timeout", err.Error())
	require.ErrorIs(t, err, cause)
	require.True(t, apperrors.Is(err, apperrors.CodeAPI))
	require.False(t, apperrors.Is(nil, apperrors.CodeAPI))

	noCause := apperrors.NewPreconditionError("group chats only")
	require.Equal(t, "group chats only", noCause.Error())
}

func TestKindsImplementApplicationError(t *testing.T) {
	t.Parallel()

	kinds := []error{
		&apperrors.DatabaseError{},
		&apperrors.ValidationError{},
		&apperrors.APIError{},
		&apperrors.ConfigError{},
		&apperrors.UnauthorizedError{},
		&apperrors.PreconditionError{},
	}
	for _, k := range kinds {
		_, ok := k.(apperrors.ApplicationError)
		require.True(t, ok, "%T", k)
	}

	var dbErr *apperrors.DatabaseError
	require.ErrorAs(t, fmt.Errorf("store: %w", apperrors.NewDatabaseError("insert failed", nil)), &dbErr)
	require.Equal(t, apperrors.CodeDatabase, dbErr.Code())
}
