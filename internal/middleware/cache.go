// Package middleware contains http middlewares shared by the api handlers.
package middleware

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type cachedResponse struct {
	code   int
	header http.Header
	body   []byte
}

// Cache keeps successful GET responses in memory for the ttl.
type Cache struct {
	lru *expirable.LRU[string, cachedResponse]
}

// NewCache ...
func NewCache(size int, ttl time.Duration) *Cache {
	return &Cache{
		lru: expirable.NewLRU[string, cachedResponse](size, nil, ttl),
	}
}

// Purge drops all cached responses.
func (c *Cache) Purge() {
	c.lru.Purge()
}

// Handler wraps handler with the cache. Only 200 responses are stored.
func (c *Cache) Handler(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			handler(w, r)
			return
		}

		if v, ok := c.lru.Get(r.RequestURI); ok {
			write(w, v)
			return
		}

		rec := httptest.NewRecorder()
		handler(rec, r)

		v := cachedResponse{
			code:   rec.Code,
			header: rec.Header().Clone(),
			body:   rec.Body.Bytes(),
		}

		if v.code == http.StatusOK {
			c.lru.Add(r.RequestURI, v)
		}

		write(w, v)
	}
}

func write(w http.ResponseWriter, v cachedResponse) {
	for k, h := range v.header {
		w.Header()[k] = h
	}

	w.WriteHeader(v.code)
	_, _ = w.Write(v.body)
}
