// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
		"/days": {
			"post": {
				"tags": [
					"days"
				],
				"summary": "Log a day",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Day",
						"schema": {
							"type": "object"
						}
					}
				]
			},
			"get": {
				"tags": [
					"days"
				],
				"summary": "List days",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"name": "month",
						"in": "query",
						"required": false,
						"description": "Month (1-12)",
						"type": "integer"
					},
					{
						"name": "year",
						"in": "query",
						"required": false,
						"description": "Year",
						"type": "integer"
					}
				]
			}
		},
		"/days/{date}": {
			"get": {
				"tags": [
					"days"
				],
				"summary": "Get a day",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"name": "date",
						"in": "path",
						"required": true,
						"description": "Date (YYYY-MM-DD)",
						"type": "string"
					}
				]
			}
		},
		"/days/{date}/activities": {
			"post": {
				"tags": [
					"days"
				],
				"summary": "Add an activity to a logged day",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "date",
						"in": "path",
						"required": true,
						"description": "Date (YYYY-MM-DD)",
						"type": "string"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Activity",
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/activities/recent": {
			"get": {
				"tags": [
					"days"
				],
				"summary": "Most recent activities",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "Maximum number of activities",
						"type": "integer"
					}
				]
			}
		},
		"/activities/{id}": {
			"patch": {
				"tags": [
					"days"
				],
				"summary": "Mark an activity as done or not done",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Activity ID",
						"type": "string"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Completion flag",
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/habits": {
			"post": {
				"tags": [
					"habits"
				],
				"summary": "Create a habit",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Habit",
						"schema": {
							"type": "object"
						}
					}
				]
			},
			"get": {
				"tags": [
					"habits"
				],
				"summary": "List habits",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				}
			}
		},
		"/habits/stats": {
			"get": {
				"tags": [
					"habits"
				],
				"summary": "Habit statistics",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"name": "date",
						"in": "query",
						"required": false,
						"description": "Reference date (YYYY-MM-DD), defaults to today",
						"type": "string"
					}
				]
			}
		},
		"/habits/{id}": {
			"put": {
				"tags": [
					"habits"
				],
				"summary": "Update a habit",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Habit ID",
						"type": "string"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Changes",
						"schema": {
							"type": "object"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"habits"
				],
				"summary": "Delete a habit and its logs",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Habit ID",
						"type": "string"
					}
				]
			}
		},
		"/habits/{id}/calendar": {
			"get": {
				"tags": [
					"habits"
				],
				"summary": "Completion calendar of one habit",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Habit ID",
						"type": "string"
					},
					{
						"name": "date",
						"in": "query",
						"required": false,
						"description": "Reference date (YYYY-MM-DD), defaults to today",
						"type": "string"
					},
					{
						"name": "days",
						"in": "query",
						"required": false,
						"description": "Number of days, at most 366",
						"type": "integer",
						"default": 60,
						"maximum": 366
					}
				]
			}
		},
		"/habit-logs": {
			"get": {
				"tags": [
					"habits"
				],
				"summary": "List habit logs",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"name": "habit_id",
						"in": "query",
						"required": false,
						"description": "Habit ID, repeatable",
						"type": "string"
					},
					{
						"name": "from",
						"in": "query",
						"required": false,
						"description": "First date",
						"type": "string"
					},
					{
						"name": "to",
						"in": "query",
						"required": false,
						"description": "Last date",
						"type": "string"
					}
				]
			}
		},
		"/habit-logs/toggle": {
			"post": {
				"tags": [
					"habits"
				],
				"summary": "Toggle a habit for a date",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Habit and date",
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/goals": {
			"post": {
				"tags": [
					"goals"
				],
				"summary": "Create an annual goal",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Goal",
						"schema": {
							"type": "object"
						}
					}
				]
			},
			"get": {
				"tags": [
					"goals"
				],
				"summary": "List the goals of a year",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"name": "year",
						"in": "query",
						"required": false,
						"description": "Year",
						"type": "integer"
					}
				]
			}
		},
		"/goals/overview": {
			"get": {
				"tags": [
					"goals"
				],
				"summary": "Annual goals grouped by category",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"name": "year",
						"in": "query",
						"required": false,
						"description": "Year",
						"type": "integer"
					},
					{
						"name": "date",
						"in": "query",
						"required": false,
						"description": "Reference date (YYYY-MM-DD), defaults to today",
						"type": "string"
					}
				]
			}
		},
		"/goals/{id}": {
			"patch": {
				"tags": [
					"goals"
				],
				"summary": "Set the current value of a goal",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Goal ID",
						"type": "string"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Progress",
						"schema": {
							"type": "object"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"goals"
				],
				"summary": "Delete a goal",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Goal ID",
						"type": "string"
					}
				]
			}
		},
		"/monthly-goals": {
			"post": {
				"tags": [
					"monthly-goals"
				],
				"summary": "Create a monthly goal",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Goal",
						"schema": {
							"type": "object"
						}
					}
				]
			},
			"get": {
				"tags": [
					"monthly-goals"
				],
				"summary": "List the goals of a month",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"name": "month",
						"in": "query",
						"required": false,
						"description": "Month (1-12)",
						"type": "integer"
					},
					{
						"name": "year",
						"in": "query",
						"required": false,
						"description": "Year",
						"type": "integer"
					}
				]
			}
		},
		"/monthly-goals/report": {
			"get": {
				"tags": [
					"monthly-goals"
				],
				"summary": "Monthly report",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"name": "month",
						"in": "query",
						"required": false,
						"description": "Month (1-12)",
						"type": "integer"
					},
					{
						"name": "year",
						"in": "query",
						"required": false,
						"description": "Year",
						"type": "integer"
					}
				]
			}
		},
		"/monthly-goals/{id}": {
			"patch": {
				"tags": [
					"monthly-goals"
				],
				"summary": "Update progress or status of a monthly goal",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Monthly goal ID",
						"type": "string"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Changes",
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/wheel-of-life": {
			"post": {
				"tags": [
					"wheel-of-life"
				],
				"summary": "Record a wheel of life snapshot",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Snapshot",
						"schema": {
							"type": "object"
						}
					}
				]
			},
			"get": {
				"tags": [
					"wheel-of-life"
				],
				"summary": "Resolved wheel of life of a month",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"name": "month",
						"in": "query",
						"required": false,
						"description": "Month (1-12)",
						"type": "integer"
					},
					{
						"name": "year",
						"in": "query",
						"required": false,
						"description": "Year",
						"type": "integer"
					}
				]
			}
		},
		"/dashboard": {
			"get": {
				"tags": [
					"dashboard"
				],
				"summary": "Home dashboard",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"name": "date",
						"in": "query",
						"required": false,
						"description": "Reference date (YYYY-MM-DD), defaults to today",
						"type": "string"
					}
				]
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Lifeboard API",
	Description:      "Personal life dashboard: days, habits, goals and the wheel of life.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
