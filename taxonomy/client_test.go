package taxonomy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `<?xml version="1.0"?>
<api batchcomplete="">
  <query>
    <pages>
      <page _idx="22939" pageid="22939" ns="0" title="Physics">
        <categories>
          <cl ns="14" title="Category:Physics" />
          <cl ns="14" title="Category:Mechanics" />
          <cl ns="14" title="Category:Physics stubs" />
        </categories>
      </page>
    </pages>
  </query>
</api>`

func TestCategories(t *testing.T) {
	var gotTitle string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTitle = r.URL.Query().Get("titles")
		assert.Equal(t, "xml", r.URL.Query().Get("format"))
		assert.Equal(t, "categories", r.URL.Query().Get("prop"))
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	categories, err := client.Categories(context.Background(), "Physics")
	require.NoError(t, err)
	assert.Equal(t, "Physics", gotTitle)
	assert.Equal(t, []string{"Category:Physics", "Category:Mechanics", "Category:Physics stubs"}, categories)
}

func TestCategoriesEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?><api><query><pages><page ns="0" title="Zzzz" missing=""/></pages></query></api>`))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	categories, err := client.Categories(context.Background(), "Zzzz")
	require.NoError(t, err)
	assert.Empty(t, categories)
	assert.NotNil(t, categories)
}

func TestCategoriesTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Categories(context.Background(), "Physics")
	assert.ErrorIs(t, err, ErrFetch)
}

func TestCategoriesParseFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<api><unclosed"))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Categories(context.Background(), "Physics")
	assert.ErrorIs(t, err, ErrFetch)
}

func TestCategoriesRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client, err := NewClient(Config{
		BaseURL:     server.URL,
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
	})
	require.NoError(t, err)

	categories, err := client.Categories(context.Background(), "Physics")
	require.NoError(t, err)
	assert.Len(t, categories, 3)
	assert.Equal(t, int32(2), calls.Load())
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Equal(t, ErrBaseURLRequired, err)
}
