package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/semka95/devcamper/web/auth"
)

type resource string

func (r resource) OwnerID() string { return string(r) }

func TestCanModify(t *testing.T) {
	owner := auth.NewClaims("owner", []string{auth.RolePublisher}, time.Now(), time.Hour)
	other := auth.NewClaims("other", []string{auth.RolePublisher}, time.Now(), time.Hour)
	admin := auth.NewClaims("admin", []string{auth.RoleAdmin}, time.Now(), time.Hour)

	assert.True(t, auth.CanModify(resource("owner"), owner))
	assert.False(t, auth.CanModify(resource("owner"), other))
	assert.True(t, auth.CanModify(resource("owner"), admin))
	assert.False(t, auth.CanModify(resource("owner"), nil))
}

func TestHasRole(t *testing.T) {
	c := auth.NewClaims("u", []string{auth.RoleUser}, time.Now(), time.Hour)
	assert.True(t, c.HasRole(auth.RoleUser, auth.RoleAdmin))
	assert.False(t, c.HasRole(auth.RolePublisher))
}
