package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cleaning-booking-api/internal/store"
)

// refresh tokens are revocable in the database; access tokens are not
const refreshTokenTTL = 7 * 24 * time.Hour

type Handler struct {
	store  *store.Store
	secret string
}

func New(st *store.Store, secret string) *Handler {
	return &Handler{store: st, secret: secret}
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// serverError logs the underlying cause and hides it from the client.
func serverError(c *gin.Context, op string, err error) {
	log.Printf("%s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong."})
}
