// Package docs holds the committed OpenAPI description served at /docs/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Authenticate admin and return a JWT token",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "username": {"type": "string"},
                                "password": {"type": "string"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Token issued"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/users": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Create a new user",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "username": {"type": "string"},
                                "email": {"type": "string"},
                                "fullName": {"type": "string"},
                                "password": {"type": "string"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "User created"},
                    "401": {"description": "Unauthorized"},
                    "409": {"description": "Username already exists"}
                }
            },
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "List all users",
                "responses": {
                    "200": {"description": "List of users without passwords"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/users/generatePassword": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Generate a secure password",
                "parameters": [
                    {
                        "name": "length",
                        "in": "query",
                        "type": "integer",
                        "minimum": 6,
                        "default": 8
                    }
                ],
                "responses": {
                    "200": {"description": "Generated password"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/events": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["events"],
                "summary": "Create a new event for an existing user",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "date": {"type": "string", "format": "date"},
                                "description": {"type": "string"},
                                "title": {"type": "string"},
                                "username": {"type": "string"},
                                "imagePlaceholderObjectKey": {"type": "string"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "Event created"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "User does not exist"}
                }
            }
        },
        "/events/{username}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["events"],
                "summary": "List a user's events with nested files",
                "parameters": [
                    {
                        "name": "username",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "Events with nested filesDto"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "User does not exist"}
                }
            }
        },
        "/files": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["files"],
                "summary": "Create file metadata for an existing event",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "description": {"type": "string"},
                                "eventId": {"type": "string"},
                                "username": {"type": "string"},
                                "objectKey": {"type": "string"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "File created"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "User or event does not exist"}
                }
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
	Title:            "Niebieskie Aparaty Admin API",
	Description:      "Administrative backend for users, events and gallery files.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
