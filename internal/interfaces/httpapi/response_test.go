package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/chelstats/chelstats/internal/usecase"
)

func TestMapErrorStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", fmt.Errorf("%w: match id is required", usecase.ErrInvalidInput), http.StatusBadRequest},
		{"not found", fmt.Errorf("%w: match m1", usecase.ErrNotFound), http.StatusNotFound},
		{"unauthorized", usecase.ErrUnauthorized, http.StatusUnauthorized},
		{"dependency unavailable", usecase.ErrDependencyUnavailable, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapErrorStatus(tc.err); got != tc.want {
				t.Fatalf("mapErrorStatus(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
