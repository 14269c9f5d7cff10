// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@example.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/menu": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Menu"],
                "summary": "Full menu with prices",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/menu/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Menu"],
                "summary": "Menu categories",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/menu/{category}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Menu"],
                "summary": "One menu category",
                "parameters": [{"type": "string", "name": "category", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Unknown category"}}
            }
        },
        "/api/v1/items/price": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Menu"],
                "summary": "Price a single configured item",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid item"}, "422": {"description": "Rule violation"}}
            }
        },
        "/api/v1/orders/validate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Orders"],
                "summary": "Validate an order and quote its price",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Structural failure"}, "409": {"description": "Price mismatch"}, "422": {"description": "Rule violation or pickup unavailable"}, "503": {"description": "Closure lookup unavailable"}}
            }
        },
        "/api/v1/orders": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Orders"],
                "summary": "Place an order",
                "parameters": [{"type": "string", "name": "Idempotency-Key", "in": "header"}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Structural failure"}, "409": {"description": "Price mismatch or idempotency conflict"}, "422": {"description": "Rule violation or pickup unavailable"}, "503": {"description": "Database unavailable"}}
            }
        },
        "/api/v1/orders/{reference}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Orders"],
                "summary": "Look up a placed order",
                "parameters": [{"type": "string", "name": "reference", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/api/v1/store/closures": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Store"],
                "summary": "Upcoming store closures",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/staff/token": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Staff"],
                "summary": "Exchange the store secret for a staff token",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid secret"}}
            }
        },
        "/api/v1/staff/closures": {
            "post": {
                "security": [{"ApiKeyAuth": []}, {"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Staff"],
                "summary": "Close the store on a date",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid date"}, "409": {"description": "Already closed"}}
            }
        },
        "/api/v1/staff/orders/today": {
            "get": {
                "security": [{"ApiKeyAuth": []}, {"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Staff"],
                "summary": "Orders placed today",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Not ready"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"},
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Steve's Place Order API",
	Description:      "Menu, order validation and pickup scheduling for Steve's Place.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
