// Package docs registers the Swagger document served at /swagger/doc.json.
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
        "/api/v1/errands/plan": {
            "post": {
                "description": "Extracts tasks from free text, finds the nearest place for each and orders them into one trip.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Errands"],
                "summary": "Plan an errand trip",
                "parameters": [
                    {
                        "description": "Errand text and current position",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.planReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.planResp"}},
                    "400": {"description": "Bad Request - location missing", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/errands/extract": {
            "post": {
                "description": "Returns the categorized tasks for a sentence without searching for places.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Errands"],
                "summary": "Preview task extraction",
                "parameters": [
                    {
                        "description": "Errand text",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.extractReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.parsedResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/errands/history": {
            "get": {
                "description": "Returns past planning runs, newest first.",
                "produces": ["application/json"],
                "tags": ["History"],
                "summary": "List planning history",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter: all, completed or pending (default: all)",
                        "name": "status",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listHistoryResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "delete": {
                "description": "Removes every history entry.",
                "produces": ["application/json"],
                "tags": ["History"],
                "summary": "Clear history",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/errands/history/{id}/toggle": {
            "patch": {
                "description": "Flips the completed flag of one history entry.",
                "produces": ["application/json"],
                "tags": ["History"],
                "summary": "Toggle a history entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "History entry ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.toggleHistoryResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/errands/route/latest": {
            "get": {
                "description": "Returns the most recent route with its decoded polyline points for map rendering.",
                "produces": ["application/json"],
                "tags": ["Errands"],
                "summary": "Latest planned route",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.latestRouteResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/errands/route/latest/points": {
            "get": {
                "description": "Returns only the decoded polyline points of the most recent route. Empty when the route has no polyline.",
                "produces": ["application/json"],
                "tags": ["Errands"],
                "summary": "Latest route path",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.routePointsResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "History store unreachable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "http.planReq": {
            "type": "object",
            "properties": {
                "task_input": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"}
            }
        },
        "http.extractReq": {
            "type": "object",
            "properties": {"task_input": {"type": "string"}}
        },
        "http.parsedResp": {
            "type": "object",
            "properties": {
                "original": {"type": "string"},
                "source": {"type": "string"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/model.TaskItem"}}
            }
        },
        "http.planResp": {
            "type": "object",
            "properties": {
                "original": {"type": "string"},
                "source": {"type": "string"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/model.TaskItem"}},
                "places": {"type": "array", "items": {"$ref": "#/definitions/model.Place"}},
                "route": {"$ref": "#/definitions/model.OptimizedRoute"},
                "calendar_event_link": {"type": "string"}
            }
        },
        "http.historyEntryResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "task_input": {"type": "string"},
                "places_count": {"type": "integer"},
                "total_distance": {"type": "number"},
                "date": {"type": "string"},
                "completed": {"type": "boolean"}
            }
        },
        "http.listHistoryResp": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"$ref": "#/definitions/http.historyEntryResp"}},
                "total": {"type": "integer"}
            }
        },
        "http.toggleHistoryResp": {
            "type": "object",
            "properties": {"entry": {"$ref": "#/definitions/http.historyEntryResp"}}
        },
        "http.pointResp": {
            "type": "object",
            "properties": {
                "latitude": {"type": "number"},
                "longitude": {"type": "number"}
            }
        },
        "http.latestRouteResp": {
            "type": "object",
            "properties": {
                "route": {"$ref": "#/definitions/model.OptimizedRoute"},
                "points": {"type": "array", "items": {"$ref": "#/definitions/http.pointResp"}}
            }
        },
        "http.routePointsResp": {
            "type": "object",
            "properties": {
                "points": {"type": "array", "items": {"$ref": "#/definitions/http.pointResp"}}
            }
        },
        "model.TaskItem": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "model.Place": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "address": {"type": "string"},
                "category": {"type": "string"},
                "distance": {"type": "number"},
                "rating": {"type": "number"},
                "hours": {"type": "string"},
                "phone": {"type": "string"},
                "website": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "taskType": {"type": "string"}
            }
        },
        "model.OptimizedRoute": {
            "type": "object",
            "properties": {
                "places": {"type": "array", "items": {"$ref": "#/definitions/model.Place"}},
                "totalDistance": {"type": "number"},
                "totalTime": {"type": "integer"},
                "polyline": {"type": "string"},
                "strategy": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Errand Planner API",
	Description:      "Turns a free-form errand list into an ordered trip of nearby places.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
