// Package docs registers the OpenAPI document served by the Swagger UI.
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
		"/health-metrics": {
			"post": {
				"description": "Compute BMI, BMR, TDEE, target calories and macro grams from intake answers. Nothing is stored.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"health-metrics"
				],
				"summary": "Calculate health metrics",
				"parameters": [
					{
						"description": "Intake answers",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.HealthProfileInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Computed metrics",
						"schema": {
							"$ref": "#/definitions/domain.HealthMetrics"
						}
					},
					"400": {
						"description": "Malformed JSON",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"422": {
						"description": "Invalid fields",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/health-metrics/guidance": {
			"post": {
				"description": "Compute metrics and ask the LLM for non-medical nutrition and training suggestions.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"health-metrics"
				],
				"summary": "Get coaching guidance",
				"parameters": [
					{
						"description": "Intake answers",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.HealthProfileInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Metrics with guidance",
						"schema": {
							"$ref": "#/definitions/domain.GuidanceResponse"
						}
					},
					"400": {
						"description": "Malformed JSON",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"422": {
						"description": "Invalid fields",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"502": {
						"description": "LLM request failed",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"503": {
						"description": "LLM not configured",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/clients/{clientId}/health-profile": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Compute metrics and relay answers plus metrics to the profile backend. The caller's bearer token is forwarded. Every attempt is recorded.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"health-profile"
				],
				"summary": "Submit health profile",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"example": "660e8400-e29b-41d4-a716-446655440001",
						"description": "Client UUID",
						"name": "clientId",
						"in": "path",
						"required": true
					},
					{
						"description": "Intake answers",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.HealthProfileInput"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Backend accepted the profile",
						"schema": {
							"$ref": "#/definitions/domain.SubmitProfileResponse"
						}
					},
					"400": {
						"description": "Invalid client ID or JSON",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"422": {
						"description": "Invalid fields",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"502": {
						"description": "Backend rejected or unreachable",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/clients/{clientId}/health-profile/submissions": {
			"get": {
				"description": "Fetch the client's submission attempts, newest first.",
				"produces": [
					"application/json"
				],
				"tags": [
					"health-profile"
				],
				"summary": "List profile submissions",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"example": "660e8400-e29b-41d4-a716-446655440001",
						"description": "Client UUID",
						"name": "clientId",
						"in": "path",
						"required": true
					},
					{
						"maximum": 100,
						"minimum": 1,
						"type": "integer",
						"default": 20,
						"description": "Results per page (1-100)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Cursor from previous response's next_cursor; other values are rejected with 422",
						"name": "cursor",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "Submissions with pagination",
						"schema": {
							"$ref": "#/definitions/domain.ProfileSubmissionListResponse"
						}
					},
					"400": {
						"description": "Invalid client ID",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"422": {
						"description": "Invalid query parameters",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/clients/{clientId}/health-profile/wizard": {
			"post": {
				"description": "Open a new health profile wizard positioned at the first step.",
				"produces": [
					"application/json"
				],
				"tags": [
					"health-profile-wizard"
				],
				"summary": "Start wizard",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"example": "660e8400-e29b-41d4-a716-446655440001",
						"description": "Client UUID",
						"name": "clientId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "New wizard session",
						"schema": {
							"$ref": "#/definitions/domain.WizardSessionResponse"
						}
					},
					"400": {
						"description": "Invalid client ID",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/health-profile-wizards/{sessionId}": {
			"get": {
				"description": "Read the wizard state. Metrics are included once the review step is reached.",
				"produces": [
					"application/json"
				],
				"tags": [
					"health-profile-wizard"
				],
				"summary": "Get wizard",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"example": "550e8400-e29b-41d4-a716-446655440000",
						"description": "Wizard session UUID",
						"name": "sessionId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Wizard session",
						"schema": {
							"$ref": "#/definitions/domain.WizardSessionResponse"
						}
					},
					"400": {
						"description": "Invalid session ID",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"404": {
						"description": "Wizard not found",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/health-profile-wizards/{sessionId}/actions": {
			"post": {
				"description": "Apply one action (set_gender, set_age, set_height, set_weight, set_activity_level, set_goal, set_goal_details, set_dietary_preferences, set_allergies, set_allergy_details, set_medical_conditions, set_medical_condition_details, next, back, go_to, reset).",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"health-profile-wizard"
				],
				"summary": "Apply wizard action",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"example": "550e8400-e29b-41d4-a716-446655440000",
						"description": "Wizard session UUID",
						"name": "sessionId",
						"in": "path",
						"required": true
					},
					{
						"description": "Action",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.WizardActionRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Updated wizard session",
						"schema": {
							"$ref": "#/definitions/domain.WizardSessionResponse"
						}
					},
					"400": {
						"description": "Invalid JSON, unknown action or malformed payload",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"404": {
						"description": "Wizard not found",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"409": {
						"description": "Action not allowed in the current state",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"422": {
						"description": "Invalid payload fields",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/health-profile-wizards/{sessionId}/submit": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Relay a finished wizard to the profile backend. The session is removed once the backend accepts it and kept for retries otherwise.",
				"produces": [
					"application/json"
				],
				"tags": [
					"health-profile-wizard"
				],
				"summary": "Submit wizard",
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"example": "550e8400-e29b-41d4-a716-446655440000",
						"description": "Wizard session UUID",
						"name": "sessionId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Backend accepted the profile",
						"schema": {
							"$ref": "#/definitions/domain.SubmitProfileResponse"
						}
					},
					"400": {
						"description": "Invalid session ID",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"404": {
						"description": "Wizard not found",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"409": {
						"description": "Wizard has not reached review",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"502": {
						"description": "Backend rejected or unreachable",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"domain.Weight": {
			"type": "object",
			"required": [
				"unit",
				"value"
			],
			"properties": {
				"unit": {
					"type": "string",
					"enum": [
						"kg",
						"lb"
					],
					"example": "kg"
				},
				"value": {
					"type": "number",
					"example": 70
				}
			}
		},
		"domain.Height": {
			"type": "object",
			"required": [
				"unit",
				"value"
			],
			"properties": {
				"unit": {
					"type": "string",
					"enum": [
						"cm",
						"ft"
					],
					"example": "cm"
				},
				"value": {
					"type": "number",
					"example": 175
				}
			}
		},
		"domain.HealthProfileInput": {
			"description": "Health profile intake answers.",
			"type": "object",
			"required": [
				"activityLevel",
				"age",
				"gender",
				"goal",
				"height",
				"weight"
			],
			"properties": {
				"gender": {
					"type": "string",
					"enum": [
						"male",
						"female",
						"other"
					],
					"example": "male"
				},
				"age": {
					"type": "integer",
					"maximum": 120,
					"example": 30
				},
				"weight": {
					"$ref": "#/definitions/domain.Weight"
				},
				"height": {
					"$ref": "#/definitions/domain.Height"
				},
				"activityLevel": {
					"type": "string",
					"enum": [
						"sedentary",
						"light",
						"moderate",
						"active",
						"veryActive"
					],
					"example": "moderate"
				},
				"goal": {
					"type": "string",
					"enum": [
						"fat-loss",
						"muscle-building",
						"muscle-building-with-fat-loss",
						"bodybuilding",
						"maintenance",
						"general-fitness",
						"other"
					],
					"example": "maintenance"
				},
				"goalDetails": {
					"type": "string",
					"maxLength": 500
				},
				"dietaryPreferences": {
					"type": "array",
					"maxItems": 20,
					"items": {
						"type": "string"
					}
				},
				"allergies": {
					"type": "array",
					"maxItems": 20,
					"items": {
						"type": "string"
					}
				},
				"medicalConditions": {
					"type": "array",
					"maxItems": 20,
					"items": {
						"type": "string"
					}
				}
			}
		},
		"domain.Macros": {
			"type": "object",
			"properties": {
				"protein": {
					"type": "integer",
					"example": 198
				},
				"carbs": {
					"type": "integer",
					"example": 264
				},
				"fat": {
					"type": "integer",
					"example": 88
				}
			}
		},
		"domain.HealthMetrics": {
			"description": "Metrics derived from a health profile.",
			"type": "object",
			"properties": {
				"bmi": {
					"type": "number",
					"example": 22.9
				},
				"bmiCategory": {
					"type": "string",
					"example": "Normal weight"
				},
				"bmr": {
					"type": "number",
					"example": 1702
				},
				"tdee": {
					"type": "number",
					"example": 2638
				},
				"targetCalories": {
					"type": "number",
					"example": 2638
				},
				"macros": {
					"$ref": "#/definitions/domain.Macros"
				}
			}
		},
		"domain.GuidanceOutput": {
			"description": "LLM-generated, non-medical coaching guidance.",
			"type": "object",
			"properties": {
				"summary": {
					"type": "string"
				},
				"nutrition": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"training": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"domain.GuidanceResponse": {
			"description": "Metrics plus coaching guidance.",
			"type": "object",
			"properties": {
				"metrics": {
					"$ref": "#/definitions/domain.HealthMetrics"
				},
				"guidance": {
					"$ref": "#/definitions/domain.GuidanceOutput"
				},
				"trace_id": {
					"type": "string"
				}
			}
		},
		"domain.ProfileSubmissionResponse": {
			"description": "Recorded health profile submission.",
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"example": "550e8400-e29b-41d4-a716-446655440000"
				},
				"client_id": {
					"type": "string",
					"example": "660e8400-e29b-41d4-a716-446655440001"
				},
				"success": {
					"type": "boolean",
					"example": true
				},
				"error": {
					"type": "string",
					"example": "Failed to submit health profile"
				},
				"profile": {
					"$ref": "#/definitions/domain.HealthProfileInput"
				},
				"metrics": {
					"$ref": "#/definitions/domain.HealthMetrics"
				},
				"created_at": {
					"type": "string",
					"example": "2024-01-16T07:05:00Z"
				}
			}
		},
		"domain.SubmitProfileResponse": {
			"description": "Result of relaying a health profile to the backend.",
			"type": "object",
			"properties": {
				"submission": {
					"$ref": "#/definitions/domain.ProfileSubmissionResponse"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"domain.PaginationResponse": {
			"description": "Cursor-based pagination info.",
			"type": "object",
			"properties": {
				"next_cursor": {
					"type": "string"
				},
				"has_more": {
					"type": "boolean",
					"example": true
				}
			}
		},
		"domain.ProfileSubmissionListResponse": {
			"description": "Paginated list of health profile submissions.",
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.ProfileSubmissionResponse"
					}
				},
				"pagination": {
					"$ref": "#/definitions/domain.PaginationResponse"
				}
			}
		},
		"domain.WizardAnswers": {
			"type": "object",
			"properties": {
				"gender": {
					"type": "string"
				},
				"age": {
					"type": "integer"
				},
				"height": {
					"$ref": "#/definitions/domain.Height"
				},
				"weight": {
					"$ref": "#/definitions/domain.Weight"
				},
				"activityLevel": {
					"type": "string"
				},
				"goal": {
					"type": "string"
				},
				"goalDetails": {
					"type": "string"
				},
				"dietaryPreferences": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"hasAllergies": {
					"type": "boolean"
				},
				"allergies": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"hasMedicalConditions": {
					"type": "boolean"
				},
				"medicalConditions": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"domain.WizardState": {
			"description": "Health profile wizard state.",
			"type": "object",
			"properties": {
				"step": {
					"type": "string",
					"enum": [
						"gender",
						"age",
						"height",
						"weight",
						"activity_level",
						"goal",
						"goal_details",
						"dietary_preferences",
						"allergies",
						"allergy_details",
						"medical_conditions",
						"medical_condition_details",
						"review"
					],
					"example": "gender"
				},
				"answers": {
					"$ref": "#/definitions/domain.WizardAnswers"
				},
				"history": {
					"type": "array",
					"items": {
						"type": "string",
						"enum": [
							"gender",
							"age",
							"height",
							"weight",
							"activity_level",
							"goal",
							"goal_details",
							"dietary_preferences",
							"allergies",
							"allergy_details",
							"medical_conditions",
							"medical_condition_details",
							"review"
						]
					}
				}
			}
		},
		"domain.WizardSessionResponse": {
			"description": "Wizard session with its current state.",
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"example": "550e8400-e29b-41d4-a716-446655440000"
				},
				"client_id": {
					"type": "string",
					"example": "660e8400-e29b-41d4-a716-446655440001"
				},
				"state": {
					"$ref": "#/definitions/domain.WizardState"
				},
				"metrics": {
					"$ref": "#/definitions/domain.HealthMetrics"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"domain.WizardActionRequest": {
			"description": "Wizard action: a type plus an optional type-specific payload.",
			"type": "object",
			"required": [
				"type"
			],
			"properties": {
				"type": {
					"type": "string",
					"example": "set_gender"
				},
				"payload": {
					"type": "object"
				}
			}
		},
		"problem.FieldError": {
			"type": "object",
			"properties": {
				"field": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"problem.Problem": {
			"type": "object",
			"properties": {
				"type": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"status": {
					"type": "integer"
				},
				"detail": {
					"type": "string"
				},
				"errors": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/problem.FieldError"
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Bearer token forwarded to the profile backend.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	},
	"tags": [
		{
			"description": "Health metrics calculation and coaching guidance",
			"name": "health-metrics"
		},
		{
			"description": "Health profile submission to the profile backend",
			"name": "health-profile"
		},
		{
			"description": "Step-by-step health profile intake",
			"name": "health-profile-wizard"
		}
	]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Gym Dashboard API",
	Description:      "Health profile intake, metrics calculation and submission relay for gym clients.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
