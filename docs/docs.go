// Package docs holds the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a staff account",
                "parameters": [
                    {"description": "Registration info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/user.RegisterInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/user.User"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "409": {"description": "Username already taken", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/user.LoginInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.TokenResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/forms/submit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Submit a form",
                "parameters": [
                    {"description": "Form submission", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/form.SubmitFormInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/form.Form"}},
                    "400": {"description": "Invalid form type or recipient", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/forms/{id}/status": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Form detail with history",
                "parameters": [{"type": "integer", "description": "Form ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/form.Detail"}},
                    "404": {"description": "Not found or not visible", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Set the status of a form routed to the caller",
                "parameters": [
                    {"type": "integer", "description": "Form ID", "name": "id", "in": "path", "required": true},
                    {"description": "New status and optional signature", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/form.UpdateStatusInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "404": {"description": "Not found or not the recipient", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/dashboard/move-form": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Hand a form over to another user or pool",
                "parameters": [
                    {"description": "Move request", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/form.MoveFormInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/form.MoveResult"}},
                    "403": {"description": "Not allowed to move this form", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/alerts/user": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["alerts"],
                "summary": "Alerts addressed to the caller",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/alert.Alert"}}}
                }
            }
        }
    },
    "definitions": {
        "response.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "response.MessageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "response.TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "user_id": {"type": "integer"},
                "username": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "user.RegisterInput": {
            "type": "object",
            "required": ["username", "password", "email", "phone_number"],
            "properties": {
                "username": {"type": "string", "example": "jdoe"},
                "password": {"type": "string", "example": "password123"},
                "email": {"type": "string", "example": "jdoe@example.com"},
                "phone_number": {"type": "string", "example": "+15551234567"}
            }
        },
        "user.LoginInput": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "user.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "role": {"type": "string"},
                "email": {"type": "string"},
                "phone_number": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "form.SubmitFormInput": {
            "type": "object",
            "required": ["form_type"],
            "properties": {
                "form_type": {"type": "string", "example": "equipment"},
                "form_data": {"type": "object"},
                "notes": {"type": "string"},
                "for_date": {"type": "string"},
                "recipient": {"type": "string", "example": "Supervisor"},
                "recipient_type": {"type": "string", "enum": ["specific", "general"]},
                "general_recipient": {"type": "string"}
            }
        },
        "form.UpdateStatusInput": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "example": "Approved"},
                "signature_image": {"type": "string"}
            }
        },
        "form.MoveFormInput": {
            "type": "object",
            "required": ["form_id", "new_recipient"],
            "properties": {
                "form_id": {"type": "integer"},
                "new_recipient": {"type": "string"},
                "recipient_type": {"type": "string", "enum": ["specific", "general"]},
                "status": {"type": "string"},
                "signature_image": {"type": "string"}
            }
        },
        "form.Form": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "user_id": {"type": "integer"},
                "form_type": {"type": "string"},
                "form_data": {"type": "object"},
                "notes": {"type": "string"},
                "status": {"type": "string"},
                "for_date": {"type": "string"},
                "recipient_type": {"type": "string"},
                "recipient_id": {"type": "integer"},
                "general_recipient": {"type": "string"},
                "alert_id": {"type": "integer"},
                "signature_url": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "form.Detail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "form_type": {"type": "string"},
                "status": {"type": "string"},
                "form_data": {"type": "object"},
                "history": {"type": "array", "items": {"type": "object"}}
            }
        },
        "form.MoveResult": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "form": {"$ref": "#/definitions/form.Form"}
            }
        },
        "alert.Alert": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "message": {"type": "string"},
                "kind": {"type": "string"},
                "role": {"type": "string"},
                "user_id": {"type": "integer"},
                "categories": {"type": "array", "items": {"type": "string"}},
                "related_form_id": {"type": "integer"},
                "read": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "StoreOps API",
	Description:      "Store operations forms, alerts and reference data.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
