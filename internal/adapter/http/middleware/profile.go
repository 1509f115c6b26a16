package middleware

import (
	"log"
	"net/http"
	"strings"

	"freelance_ledger/internal/domain/entities"
	"freelance_ledger/internal/usecase"
	"freelance_ledger/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderProfileID carries the calling profile's id. The value is trusted as-is;
// there is no signature or token behind it.
const HeaderProfileID = "profile_id"

const contextProfileKey = "profile"

// ProfileLoader resolves the profile_id header into a full profile and aborts
// with 401 when the header is missing or names an unknown profile.
func ProfileLoader(profiles usecase.IProfileUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderProfileID))
		if id == "" {
			log.Printf("[auth][middleware] missing profile header path=%s", c.FullPath())
			appErr := pkg.NewDomainErrorSimple("PROFILE_REQUIRED", "A valid profile_id header is required", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		profile, err := profiles.GetByID(c.Request.Context(), id)
		if err != nil {
			log.Printf("[auth][middleware] profile lookup failed profile_id=%s err=%v", id, err)
			appErr := pkg.NewDomainErrorSimple("PROFILE_UNKNOWN", "Unknown profile", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(contextProfileKey, profile)
		c.Next()
	}
}

// ProfileFromContext returns the profile stored by ProfileLoader.
func ProfileFromContext(c *gin.Context) (entities.Profile, bool) {
	v, ok := c.Get(contextProfileKey)
	if !ok {
		return entities.Profile{}, false
	}
	profile, ok := v.(entities.Profile)
	return profile, ok
}
