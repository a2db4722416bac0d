package svg

// RenderFailure exposes the render error constructor to tests.
var RenderFailure = renderFailure
