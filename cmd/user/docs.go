package main

// @title Fluke User Service API
// @version 1.0
// @description User account management service backing the Fluke application

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @tag.name Users
// @tag.description User management endpoints

// @tag.name Health
// @tag.description Health check endpoints
