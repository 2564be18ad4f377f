package api

import "github.com/gin-gonic/gin"

// Controller wraps the gin group a Module mounts its endpoints on.
// The uppercase PUBLIC_ variants register handlers that skip the
// current-user resolution.
type Controller struct {
	Group *gin.RouterGroup
}

func (c *Controller) GET(path string, h HandlerFuncWithAuth) {
	c.Group.GET(path, ResolveEndpointWithAuth(h))
}

func (c *Controller) POST(path string, h HandlerFuncWithAuth) {
	c.Group.POST(path, ResolveEndpointWithAuth(h))
}

func (c *Controller) PUT(path string, h HandlerFuncWithAuth) {
	c.Group.PUT(path, ResolveEndpointWithAuth(h))
}

func (c *Controller) DELETE(path string, h HandlerFuncWithAuth) {
	c.Group.DELETE(path, ResolveEndpointWithAuth(h))
}

func (c *Controller) PUBLIC_GET(path string, h HandlerFunc) {
	c.Group.GET(path, ResolveEndpoint(h))
}

func (c *Controller) PUBLIC_POST(path string, h HandlerFunc) {
	c.Group.POST(path, ResolveEndpoint(h))
}

// RAW_GET registers a plain gin handler for endpoints whose response shape
// does not fit the (result, error) envelope.
func (c *Controller) RAW_GET(path string, h gin.HandlerFunc) {
	c.Group.GET(path, h)
}
