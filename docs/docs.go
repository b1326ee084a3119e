// Package docs holds the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Healthcheck",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/jwt": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Issue access token",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/users": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["users"],
                "summary": "List users",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}
            },
            "post": {
                "tags": ["users"],
                "summary": "Register user",
                "responses": {"200": {"description": "user already exists"}, "201": {"description": "Created"}}
            }
        },
        "/users/{id}": {
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["users"],
                "summary": "Delete user",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/users/admin/{id}": {
            "patch": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["users"],
                "summary": "Promote user to admin",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/user/admin/{email}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["users"],
                "summary": "Check own admin role",
                "parameters": [{"type": "string", "name": "email", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/menu": {
            "get": {
                "tags": ["menu"],
                "summary": "List menu",
                "parameters": [{"type": "string", "name": "category", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["menu"],
                "summary": "Create menu item",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/menu/import": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["menu"],
                "summary": "Import menu from Google Sheets",
                "responses": {"201": {"description": "Created"}, "501": {"description": "Not Implemented"}}
            }
        },
        "/menu/{id}": {
            "get": {
                "tags": ["menu"],
                "summary": "Get menu item by ID",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["menu"],
                "summary": "Update menu item",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["menu"],
                "summary": "Delete menu item",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/review": {
            "get": {
                "tags": ["reviews"],
                "summary": "List reviews",
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/carts": {
            "get": {
                "tags": ["carts"],
                "summary": "List cart entries",
                "parameters": [{"type": "string", "name": "email", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["carts"],
                "summary": "Add item to cart",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/carts/{id}": {
            "patch": {
                "tags": ["carts"],
                "summary": "Change cart entry quantity",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["carts"],
                "summary": "Remove cart entry",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/booking": {
            "post": {
                "tags": ["bookings"],
                "summary": "Book a table",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/order": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["orders"],
                "summary": "List orders",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["orders"],
                "summary": "Place order",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/order/export": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["orders"],
                "summary": "Export orders",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/order/feed": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["orders"],
                "summary": "Live order events (websocket)",
                "responses": {"101": {"description": "Switching Protocols"}}
            }
        },
        "/order/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["orders"],
                "summary": "Get order by ID",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["orders"],
                "summary": "Delete order",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/payment/success/{tranId}": {
            "post": {
                "tags": ["payment"],
                "summary": "Payment success callback",
                "parameters": [{"type": "string", "name": "tranId", "in": "path", "required": true}],
                "responses": {"303": {"description": "See Other"}, "404": {"description": "Not Found"}}
            }
        },
        "/payment/failed/{tranId}": {
            "post": {
                "tags": ["payment"],
                "summary": "Payment failure callback",
                "parameters": [{"type": "string", "name": "tranId", "in": "path", "required": true}],
                "responses": {"303": {"description": "See Other"}, "404": {"description": "Not Found"}}
            }
        },
        "/general": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["admin"],
                "summary": "Admin statistics",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bistro API",
	Description:      "Restaurant ordering API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
