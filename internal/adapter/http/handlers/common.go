package handlers

import (
	"net/http"
	"strings"

	"buildready/pkg"

	"github.com/gin-gonic/gin"
)

// AccountHeader carries the tenant identifier on every request. There is no
// authentication in this system; the demo front end pins a single account.
const (
	AccountHeader    = "X-Account-ID"
	defaultAccountID = "demo-account"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
)

func accountID(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader(AccountHeader)); v != "" {
		return v
	}
	return defaultAccountID
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
