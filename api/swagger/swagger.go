package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SkillSwap API",
        "description": "Peer-to-peer skill exchange backend",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Registration, login and identity"},
        {"name": "Users", "description": "Profiles, skill sets and bookmarks"},
        {"name": "Skills", "description": "Skill catalog and interest tracking"},
        {"name": "Sessions", "description": "Teaching sessions, attendance and recordings"},
        {"name": "Notifications", "description": "Email and in-app notifications"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Wrong password"},
                    "404": {"description": "Unknown email"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current account",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Missing or invalid token"}
                }
            }
        },
        "/users/profile": {
            "get": {
                "tags": ["Users"],
                "summary": "Get profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Users"],
                "summary": "Update profile",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/users/shared-skills": {
            "get": {
                "tags": ["Users"],
                "summary": "Skills the caller teaches",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/users/skills/learn": {
            "get": {
                "tags": ["Users"],
                "summary": "Skills the caller wants to learn",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/users/skills/teach": {
            "post": {
                "tags": ["Users"],
                "summary": "Add skills to the teaching set",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddTeachSkillsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/users/recordings": {
            "get": {
                "tags": ["Users"],
                "summary": "Recordings for sessions the caller took part in",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/users/recordings/{id}/bookmark": {
            "post": {
                "tags": ["Users"],
                "summary": "Bookmark a recording",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Remove a bookmark",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/skills": {
            "get": {
                "tags": ["Skills"],
                "summary": "List skill catalog",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/skills/learn": {
            "get": {
                "tags": ["Skills"],
                "summary": "Browse skills with at least one teacher",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/skills/user/{userId}": {
            "get": {
                "tags": ["Skills"],
                "summary": "Skills linked to a user",
                "parameters": [
                    {"name": "userId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/skills/add": {
            "post": {
                "tags": ["Skills"],
                "summary": "Add a skill to the catalog",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddSkillRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/skills/teach": {
            "post": {
                "tags": ["Skills"],
                "summary": "Offer to teach a skill",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TeachSkillRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/skills/update/{id}": {
            "put": {
                "tags": ["Skills"],
                "summary": "Update a skill",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSkillRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/skills/delete/{id}": {
            "delete": {
                "tags": ["Skills"],
                "summary": "Delete a skill",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/skills/{id}/interest": {
            "post": {
                "tags": ["Skills"],
                "summary": "Express interest in learning",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Skills"],
                "summary": "Withdraw interest",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/sessions/create": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Create a session",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSessionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/sessions/my-sessions": {
            "get": {
                "tags": ["Sessions"],
                "summary": "Sessions the caller teaches or attends",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/sessions/{id}": {
            "get": {
                "tags": ["Sessions"],
                "summary": "Session detail with participants",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown session"}
                }
            }
        },
        "/sessions/{id}/gmeet": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Set the meet link and notify learners",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetGMeetLinkRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/sessions/attend/{id}": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Track attendance",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TrackAttendanceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/sessions/record/{id}": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Attach a recording",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RecordSessionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "get": {
                "tags": ["Sessions"],
                "summary": "List recordings for a session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notifications/send": {
            "post": {
                "tags": ["Notifications"],
                "summary": "Send a notification",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SendNotificationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notifications/{userId}": {
            "get": {
                "tags": ["Notifications"],
                "summary": "List notifications for a user",
                "parameters": [
                    {"name": "userId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "contact": {"type": "string"},
                "college": {"type": "string"},
                "professionalDetails": {"type": "string"},
                "skillsTeaching": {"type": "array", "items": {"type": "string"}},
                "skillsLearning": {"type": "array", "items": {"type": "string"}},
                "currentSessions": {"type": "array", "items": {"type": "string"}},
                "bookmarks": {"type": "array", "items": {"type": "string"}},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "Skill": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "skillName": {"type": "string"},
                "description": {"type": "string"},
                "usersTeaching": {"type": "array", "items": {"type": "string"}},
                "usersLearning": {"type": "array", "items": {"type": "string"}},
                "createdAt": {"type": "string"}
            }
        },
        "Session": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "teacherId": {"type": "string"},
                "teacherName": {"type": "string"},
                "learners": {"type": "array", "items": {"type": "string"}},
                "scheduledTime": {"type": "string"},
                "duration": {"type": "integer"},
                "recordingLink": {"type": "string"},
                "isPublished": {"type": "boolean"},
                "status": {"type": "string"},
                "category": {"type": "string"},
                "skills": {"type": "array", "items": {"type": "string"}},
                "price": {"type": "number"},
                "maxLearners": {"type": "integer"},
                "sessions": {"type": "array", "items": {"type": "object"}},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "Recording": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "sessionId": {"type": "string"},
                "recordedUrl": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "Notification": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user": {"type": "string"},
                "subject": {"type": "string"},
                "message": {"type": "string"},
                "read": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "RegisterRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "contact": {"type": "string"},
                "college": {"type": "string"},
                "professionalDetails": {"type": "string"},
                "skillsToTeach": {"type": "array", "items": {"type": "string"}},
                "skillsToLearn": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["name", "email", "password"]
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "contact": {"type": "string"},
                "college": {"type": "string"},
                "professionalDetails": {"type": "string"},
                "skillsToTeach": {"type": "array", "items": {"type": "string"}},
                "skillsToLearn": {"type": "array", "items": {"type": "string"}}
            }
        },
        "AddTeachSkillsRequest": {
            "type": "object",
            "properties": {
                "skills": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["skills"]
        },
        "AddSkillRequest": {
            "type": "object",
            "properties": {
                "skillName": {"type": "string"},
                "description": {"type": "string"}
            },
            "required": ["skillName"]
        },
        "TeachSkillRequest": {
            "type": "object",
            "properties": {
                "skillName": {"type": "string"},
                "description": {"type": "string"}
            },
            "required": ["skillName"]
        },
        "UpdateSkillRequest": {
            "type": "object",
            "properties": {
                "skillId": {"type": "string"},
                "skillName": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "CreateSessionRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "teacherId": {"type": "string"},
                "teacherName": {"type": "string"},
                "learnerIds": {"type": "array", "items": {"type": "string"}},
                "gmeetLink": {"type": "string"},
                "scheduledTime": {"type": "string"},
                "duration": {"type": "integer"},
                "isPublished": {"type": "boolean"},
                "status": {"type": "string"},
                "category": {"type": "string"},
                "skills": {"type": "array", "items": {"type": "string"}},
                "price": {"type": "number"},
                "maxLearners": {"type": "integer"},
                "sessions": {"type": "array", "items": {"type": "object"}}
            },
            "required": ["title", "description", "teacherId", "scheduledTime", "duration"]
        },
        "SetGMeetLinkRequest": {
            "type": "object",
            "properties": {
                "gmeetLink": {"type": "string"}
            },
            "required": ["gmeetLink"]
        },
        "TrackAttendanceRequest": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"}
            },
            "required": ["userId"]
        },
        "RecordSessionRequest": {
            "type": "object",
            "properties": {
                "recordingUrl": {"type": "string"}
            },
            "required": ["recordingUrl"]
        },
        "SendNotificationRequest": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "email": {"type": "string"},
                "subject": {"type": "string"},
                "message": {"type": "string"}
            },
            "required": ["subject", "message"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
