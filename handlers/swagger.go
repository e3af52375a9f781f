package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the content API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>faqdesk API - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// OpenAPI document for the public and admin endpoints. Routes marked with
// bearerAuth need a token from /api/auth/login.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "faqdesk", "version": "v1.0.0" },
  "components": {
    "securitySchemes": { "bearerAuth": { "type": "http", "scheme": "bearer" } },
    "schemas": {
      "Error": { "type": "object", "properties": { "error": { "type": "string" } } },
      "Message": { "type": "object", "properties": { "message": { "type": "string" } } },
      "Category": { "type": "object", "properties": { "id": {"type":"string"}, "name": {"type":"string"}, "slug": {"type":"string"}, "order": {"type":"integer"} } },
      "FAQ": { "type": "object", "properties": { "id": {"type":"string"}, "categoryId": {"type":"string"}, "question": {"type":"string"}, "answer": {"type":"string"}, "order": {"type":"integer"}, "createdAt": {"type":"string","format":"date-time"}, "updatedAt": {"type":"string","format":"date-time"} } },
      "FeaturedCard": { "type": "object", "properties": { "id": {"type":"string"}, "title": {"type":"string"}, "description": {"type":"string"}, "icon": {"type":"string"}, "link": {"type":"string"}, "color": {"type":"string"}, "order": {"type":"integer"} } },
      "FooterLinkItem": { "type": "object", "properties": { "id": {"type":"string"}, "label": {"type":"string"}, "href": {"type":"string"}, "order": {"type":"integer"} } },
      "FooterSection": { "type": "object", "properties": { "id": {"type":"string"}, "title": {"type":"string"}, "order": {"type":"integer"}, "items": { "type": "array", "items": { "$ref": "#/components/schemas/FooterLinkItem" } } } },
      "Settings": { "type": "object", "properties": { "supportLink": {"type":"string"}, "supportLabel": {"type":"string"} } }
    }
  },
  "paths": {
    "/api/auth/login": {
      "post": {
        "summary": "Admin login",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "token issued" }, "400": { "description": "missing fields" }, "401": { "description": "invalid credentials" } }
      }
    },
    "/api/auth/logout": { "post": { "summary": "Forget the bearer token", "responses": { "200": { "description": "logged out" } } } },
    "/api/auth/verify": { "get": { "summary": "Check the bearer token", "responses": { "200": { "description": "valid" }, "401": { "description": "missing, unknown or expired token" } } } },
    "/api/categories": {
      "get": { "summary": "List categories", "responses": { "200": { "description": "categories sorted by order" } } },
      "post": { "summary": "Create category", "security": [{"bearerAuth":[]}], "responses": { "201": { "description": "created" }, "400": { "description": "name missing" } } }
    },
    "/api/categories/{id}": {
      "get": { "summary": "Get category", "responses": { "200": { "description": "category" }, "404": { "description": "not found" } } },
      "put": { "summary": "Update category", "security": [{"bearerAuth":[]}], "responses": { "200": { "description": "updated" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete category", "security": [{"bearerAuth":[]}], "responses": { "200": { "description": "deleted" }, "400": { "description": "category still has FAQs" }, "404": { "description": "not found" } } }
    },
    "/api/categories/slug/{slug}": { "get": { "summary": "Get category by slug", "responses": { "200": { "description": "category" }, "404": { "description": "not found" } } } },
    "/api/faqs": {
      "get": { "summary": "List FAQs", "responses": { "200": { "description": "FAQs sorted by order" } } },
      "post": { "summary": "Create FAQ", "security": [{"bearerAuth":[]}], "responses": { "201": { "description": "created" }, "400": { "description": "missing fields or unknown category" } } }
    },
    "/api/faqs/grouped": { "get": { "summary": "Categories with their FAQs", "responses": { "200": { "description": "grouped FAQs" } } } },
    "/api/faqs/category/{categoryId}": { "get": { "summary": "FAQs of one category", "responses": { "200": { "description": "FAQs" } } } },
    "/api/faqs/reorder": { "put": { "summary": "Bulk reorder FAQs", "security": [{"bearerAuth":[]}], "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"items":{"type":"array","items":{"type":"object","properties":{"id":{"type":"string"},"order":{"type":"integer"}}}}}}}}}, "responses": { "200": { "description": "reordered" }, "400": { "description": "items must be an array" } } } },
    "/api/faqs/{id}": {
      "get": { "summary": "Get FAQ", "responses": { "200": { "description": "FAQ" }, "404": { "description": "not found" } } },
      "put": { "summary": "Update FAQ", "security": [{"bearerAuth":[]}], "responses": { "200": { "description": "updated" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete FAQ", "security": [{"bearerAuth":[]}], "responses": { "200": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/api/search": { "get": { "summary": "Search FAQs", "parameters": [{"name":"q","in":"query","schema":{"type":"string"}}], "responses": { "200": { "description": "matching FAQs, empty for queries under 2 characters" } } } },
    "/api/featured-cards": {
      "get": { "summary": "List featured cards", "responses": { "200": { "description": "cards" } } },
      "post": { "summary": "Create featured card", "security": [{"bearerAuth":[]}], "responses": { "201": { "description": "created" }, "400": { "description": "title or description missing" } } }
    },
    "/api/featured-cards/{id}": {
      "get": { "summary": "Get featured card", "responses": { "200": { "description": "card" }, "404": { "description": "not found" } } },
      "put": { "summary": "Update featured card", "security": [{"bearerAuth":[]}], "responses": { "200": { "description": "updated" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete featured card", "security": [{"bearerAuth":[]}], "responses": { "200": { "description": "deleted" } } }
    },
    "/api/settings": {
      "get": { "summary": "Site settings", "responses": { "200": { "description": "settings" } } },
      "put": { "summary": "Update site settings", "security": [{"bearerAuth":[]}], "responses": { "200": { "description": "updated" } } }
    },
    "/api/footer-links": {
      "get": { "summary": "List footer sections", "responses": { "200": { "description": "sections with items" } } },
      "post": { "summary": "Create footer section", "security": [{"bearerAuth":[]}], "responses": { "201": { "description": "created" } } }
    },
    "/api/footer-links/{id}": {
      "get": { "summary": "Get footer section", "responses": { "200": { "description": "section" }, "404": { "description": "not found" } } },
      "put": { "summary": "Update footer section", "security": [{"bearerAuth":[]}], "responses": { "200": { "description": "updated" } } },
      "delete": { "summary": "Delete footer section", "security": [{"bearerAuth":[]}], "responses": { "200": { "description": "deleted" } } }
    },
    "/api/footer-links/{id}/items": { "post": { "summary": "Add footer link", "security": [{"bearerAuth":[]}], "responses": { "201": { "description": "created" }, "404": { "description": "section not found" } } } },
    "/api/footer-links/{id}/items/{itemId}": {
      "put": { "summary": "Update footer link", "security": [{"bearerAuth":[]}], "responses": { "200": { "description": "updated" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete footer link", "security": [{"bearerAuth":[]}], "responses": { "200": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/api/admin/export": { "get": { "summary": "Download the whole content document", "security": [{"bearerAuth":[]}], "responses": { "200": { "description": "document" } } } },
    "/api/admin/backup": { "post": { "summary": "Store a snapshot in object storage", "security": [{"bearerAuth":[]}], "responses": { "201": { "description": "snapshot key and download URL" }, "503": { "description": "object storage not configured" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
