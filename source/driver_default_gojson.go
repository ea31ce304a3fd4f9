package source

import (
	uv "github.com/Frizi/ultraviolet"
	drvgojson "github.com/Frizi/ultraviolet/source/gojson"
)

// init in a separate package to avoid import cycle in root. Importing this
// package for side effects makes go-json the JSON driver when built with the
// gojson tag.
func init() { uv.SetJSONDriver(drvgojson.Driver()) }
