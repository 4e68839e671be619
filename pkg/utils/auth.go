package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"github.com/linskybing/storeops-go/pkg/types"
	"golang.org/x/crypto/bcrypt"
)

var errNoClaims = errors.NewUnauthorized(nil, "user claims not found in context")

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errNoClaims
	}
	claims, ok := claimsVal.(*types.Claims)
	if !ok || claims == nil {
		return nil, errors.NewUnauthorized(nil, "invalid user claims type")
	}
	return claims, nil
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// HashPassword hashes with the given bcrypt cost, falling back to the
// library default when cost is out of range.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errors.Annotate(err, "hashing password")
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
