package templatectx

import (
	"fmt"
	"net/http"

	"github.com/thirstydigital/django/internal/service"
	"github.com/thirstydigital/django/models"
)

// PermWrapper and PermLookupDict proxy the permissions system into objects
// the template system can traverse: {{ if (perms.Get "polls").Get "add_choice" }}.
// They hold no state of their own; every boolean they produce reflects the
// underlying permission check at query time.

// PermLookupDict answers permission queries within one module.
type PermLookupDict struct {
	r      *http.Request
	user   models.User
	module string
	svc    service.PermService
}

// Get reports whether the user holds the "<module>.<perm>" permission.
func (d *PermLookupDict) Get(perm string) bool {
	return d.svc.HasPerm(d.r.Context(), d.user, d.module+"."+perm)
}

// Bool reports whether the user holds any permission within the module.
func (d *PermLookupDict) Bool() bool {
	return d.svc.HasModulePerms(d.r.Context(), d.user, d.module)
}

// String implements [fmt.Stringer], listing the user's full permission set.
func (d *PermLookupDict) String() string {
	perms, err := d.svc.AllPermissions(d.r.Context(), d.user)
	if err != nil {
		return "[]"
	}
	return fmt.Sprintf("%v", perms)
}

// PermWrapper is the first level of the proxy: module name to
// PermLookupDict.
type PermWrapper struct {
	r    *http.Request
	user models.User
	svc  service.PermService
}

// NewPermWrapper builds the permission proxy for the given request user.
func NewPermWrapper(r *http.Request, user models.User, svc service.PermService) *PermWrapper {
	return &PermWrapper{r: r, user: user, svc: svc}
}

// Get returns the permission lookup for one module.
func (w *PermWrapper) Get(module string) *PermLookupDict {
	return &PermLookupDict{r: w.r, user: w.user, module: module, svc: w.svc}
}
