package api

import (
	"net/http"
	"strings"

	dprequest "github.com/ONSdigital/dp-net/v2/request"
)

// callerIdentity retrieves the caller identity from the request headers
// or cookies. Identity verification happens upstream; here the token is
// the identifier the access policy and the usage ledger key on. If no
// token is found, it returns an empty string and the caller is treated
// as anonymous.
func callerIdentity(r *http.Request) string {
	identity := r.Header.Get(dprequest.AuthHeaderKey)

	// If no token in the header, check if it is present in cookies
	if identity == "" {
		// The only possible error is ErrNoCookie, which is not considered an error here
		c, err := r.Cookie(dprequest.FlorenceCookieKey)
		if err != nil {
			return ""
		}
		identity = c.Value
	}

	return strings.TrimPrefix(identity, dprequest.BearerPrefix)
}
