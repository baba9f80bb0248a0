// Package docs holds the OpenAPI document served at /swagger/*.
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
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        },
        "/leads": {
            "get": {
                "description": "Filters are optional and AND-combined. Results are ordered by creation time.",
                "produces": ["application/json"],
                "tags": ["leads"],
                "summary": "List leads",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive substring of the lead name", "name": "query", "in": "query"},
                    {"type": "string", "description": "Exact source", "name": "source", "in": "query"},
                    {"type": "string", "description": "Exact owner", "name": "owner", "in": "query"},
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 20, max 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.listLeadsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "description": "The lead starts in stage \"New Lead\". A missing owner becomes \"defaultOwner\".",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["leads"],
                "summary": "Create a lead",
                "parameters": [
                    {"type": "string", "description": "Idempotency key to prevent duplicate submissions", "name": "Idempotency-Key", "in": "header"},
                    {"description": "Lead details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createLeadRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.createLeadResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/leads/{leadId}/owner": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["leads"],
                "summary": "Reassign a lead",
                "parameters": [
                    {"type": "string", "description": "Lead id (UUID)", "name": "leadId", "in": "path", "required": true},
                    {"description": "New owner", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateOwnerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.updateLeadResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/leads/{leadId}/stage": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["leads"],
                "summary": "Move a lead to another stage",
                "parameters": [
                    {"type": "string", "description": "Lead id (UUID)", "name": "leadId", "in": "path", "required": true},
                    {"description": "New stage", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateStageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.updateLeadResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.createLeadRequest": {
            "type": "object",
            "required": ["name", "source"],
            "properties": {
                "name": {"type": "string", "maxLength": 255},
                "owner": {"type": "string", "maxLength": 50},
                "source": {"type": "string", "enum": ["Facebook", "LinkedIn", "Manual", "Other"]}
            }
        },
        "handler.createLeadResponse": {
            "type": "object",
            "properties": {"lead": {"$ref": "#/definitions/handler.leadResponse"}}
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "status": {"type": "string"}}
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.leadResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "owner": {"type": "string"},
                "source": {"type": "string"},
                "stage": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handler.listLeadsResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "leads": {"type": "array", "items": {"$ref": "#/definitions/handler.leadResponse"}},
                "totalPages": {"type": "integer"}
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "dependencies": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}},
                "status": {"type": "string"}
            }
        },
        "handler.updateLeadResponse": {
            "type": "object",
            "properties": {"updated": {"$ref": "#/definitions/handler.leadResponse"}}
        },
        "handler.updateOwnerRequest": {
            "type": "object",
            "required": ["owner"],
            "properties": {"owner": {"type": "string", "maxLength": 50}}
        },
        "handler.updateStageRequest": {
            "type": "object",
            "required": ["stage"],
            "properties": {"stage": {"type": "string", "enum": ["New Lead", "Cold calling", "In Progress", "No Response"]}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Leads API",
	Description:      "CRUD service for sales leads: list and search, create, change stage, reassign owner.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
