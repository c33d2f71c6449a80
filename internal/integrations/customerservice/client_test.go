package customerservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

func TestClient_GetCustomer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/internal/customers/42":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":42,"name":"Anna","phone":"+10000000000"}`))
		case "/internal/customers/43":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", time.Second, logger.NewNop())

	customer, err := client.GetCustomer(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Anna", customer.Name)
	require.NotNil(t, customer.Phone)
	assert.Equal(t, "+10000000000", *customer.Phone)

	_, err = client.GetCustomer(context.Background(), 43)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = client.GetCustomer(context.Background(), 44)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GracefulDegradation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/internal/customers/43" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, logger.NewNop())

	_, err := client.GetCustomerWithGracefulDegradation(context.Background(), 42)
	assert.ErrorIs(t, err, ErrServiceDegraded)

	_, err = client.GetCustomerWithGracefulDegradation(context.Background(), 43)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.NotErrorIs(t, err, ErrServiceDegraded)
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(url, 100*time.Millisecond, logger.NewNop())

	_, err := client.GetCustomerWithGracefulDegradation(context.Background(), 42)
	assert.ErrorIs(t, err, ErrServiceDegraded)
}
