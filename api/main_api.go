package main

import "github.com/CPU-commits/RedInclusion/api/server"

// @title          Red de Inclusión API
// @version        1.0
// @description    API Server Red de Inclusión, beneficiarios, actividades y reportes
// @termsOfService http://swagger.io/terms/

// @contact.name  API Support
// @contact.url   http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url  http://www.apache.org/licenses/LICENSE-2.0.html

// @tag.name        beneficiarios
// @tag.description Registro y seguimiento de beneficiarios
// @tag.name        actividades
// @tag.description Actividades, reuniones y asistencia

// @host     localhost:8080
// @BasePath /api

// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       Authorization
// @description                BearerJWTToken in Authorization Header

// @accept  json
// @produce json
// @product application/zip
// @product application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @product application/pdf

// @schemes http https
func main() {
	server.Init()
}
