// Package generated holds the HTTP types and chi router produced from api/openapi.yaml.
package generated

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -package generated -generate types,chi-server -o api.gen.go ../../../api/openapi.yaml
