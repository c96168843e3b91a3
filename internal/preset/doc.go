// Package preset loads reusable project recipes from YAML. A preset names the
// optional features to enable, whether to start the dev server, the package
// manager, and extra packages to install. Files are validated against an
// embedded JSON Schema before they are decoded.
package preset
