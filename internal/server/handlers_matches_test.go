package server

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest("GET", "/matches?page=3&page_size=bogus", nil)

	assert.Equal(t, 3, queryInt(req, "page", 1))
	assert.Equal(t, 20, queryInt(req, "page_size", 20))
	assert.Equal(t, 1, queryInt(req, "missing", 1))
}

func TestQueryFloat(t *testing.T) {
	req := httptest.NewRequest("GET", "/matches?min_score=42.5&bad=x", nil)

	assert.Equal(t, 42.5, queryFloat(req, "min_score", 0))
	assert.Equal(t, 0.0, queryFloat(req, "bad", 0))
	assert.Equal(t, 30.0, queryFloat(req, "missing", 30))
}
