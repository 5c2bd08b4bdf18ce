package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackpad/internal/api/store"
	"stackpad/pkg/httputil"
	"stackpad/pkg/platform/sentinel"
	"stackpad/pkg/requestcontext"
)

func TestCreateStampsIDAndTime(t *testing.T) {
	svc := NewNotes(store.NewMemoryStore())
	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), fixed)

	note, err := svc.Create(ctx, CreateInput{Title: "  hello  ", Body: "world"})
	require.NoError(t, err)

	assert.NotZero(t, note.ID)
	assert.Equal(t, "hello", note.Title, "title should be trimmed")
	assert.Equal(t, fixed, note.CreatedAt, "creation time comes from request context")

	got, err := svc.Get(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note, got)
}

func TestCreateValidation(t *testing.T) {
	svc := NewNotes(store.NewMemoryStore())
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"empty title", CreateInput{Title: ""}},
		{"blank title", CreateInput{Title: "   "}},
		{"title too long", CreateInput{Title: strings.Repeat("x", maxTitleLen+1)}},
		{"body too long", CreateInput{Title: "ok", Body: strings.Repeat("x", maxBodyLen+1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.in)
			require.Error(t, err)

			var apiErr httputil.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, httputil.CodeBadRequest, apiErr.Code)
		})
	}
}

func TestDeletePassesThroughNotFound(t *testing.T) {
	svc := NewNotes(store.NewMemoryStore())

	note, err := svc.Create(context.Background(), CreateInput{Title: "once"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), note.ID))
	err = svc.Delete(context.Background(), note.ID)
	require.ErrorIs(t, err, sentinel.ErrNotFound)
}
