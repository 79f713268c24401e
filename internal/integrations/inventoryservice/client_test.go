package inventoryservice

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger запоминает строки, ушедшие в лог
type recordingLogger struct {
	warns  []string
	errors []string
}

func (l *recordingLogger) Info(string, ...interface{}) {}
func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}
func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingLogger) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := &recordingLogger{}
	return NewClient(srv.URL, 2*time.Second, log), log
}

func TestGetProperty(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/internal/properties/1", r.URL.Path)
			fmt.Fprint(w, `{"id":1,"name":"Seaside","timezone":"Europe/Tallinn","startTimesLocal":["14:00"],"endTimesLocal":["10:00"]}`)
		})

		property, err := client.GetProperty(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "Europe/Tallinn", property.Timezone)
		require.Len(t, property.StartTimesLocal, 1)
	})

	t.Run("404 maps to sentinel and is logged", func(t *testing.T) {
		client, log := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetProperty(context.Background(), 42)

		assert.ErrorIs(t, err, ErrPropertyNotFound)
		assert.NotEmpty(t, log.warns)
	})

	t.Run("unexpected status is logged as error", func(t *testing.T) {
		client, log := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.GetProperty(context.Background(), 1)

		assert.ErrorIs(t, err, ErrInvalidResponse)
		assert.NotEmpty(t, log.errors)
	})
}

func TestGetProductsByIDs(t *testing.T) {
	catalog := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":1,"name":"Breakfast","priceNet":"6","priceTaxPercentage":"9","chargeMethod":"once-per-booking"},{"id":2,"name":"Parking","priceNet":"20","priceTaxPercentage":"9","chargeMethod":"nightly"}]`)
	}

	t.Run("all requested ids found", func(t *testing.T) {
		client, _ := newTestClient(t, catalog)

		products, err := client.GetProductsByIDs(context.Background(), 1, []int64{2, 1})

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Parking", products[0].Name)
		assert.Equal(t, "Breakfast", products[1].Name)
	})

	t.Run("missing id is an error, never an empty slice", func(t *testing.T) {
		client, log := newTestClient(t, catalog)

		products, err := client.GetProductsByIDs(context.Background(), 1, []int64{99})

		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.Nil(t, products)
		assert.NotEmpty(t, log.warns)
	})

	t.Run("empty request skips the catalog fetch", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("catalog must not be fetched for an empty id list")
		})

		products, err := client.GetProductsByIDs(context.Background(), 1, nil)

		require.NoError(t, err)
		assert.Empty(t, products)
	})
}
