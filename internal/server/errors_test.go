package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrNotFound{Resource: "match", ID: "abc"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "id", Message: "invalid"}))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(&ErrUnauthorized{}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("boom")))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "match not found: abc", (&ErrNotFound{Resource: "match", ID: "abc"}).Error())
	assert.Equal(t, "validation error: id - invalid", (&ErrValidation{Field: "id", Message: "invalid"}).Error())
	assert.Equal(t, "unauthorized", (&ErrUnauthorized{}).Error())
}
