package main

import "github.com/barterhub/barter-api/cmd"

// @title           Barter API
// @version         1.0.0
// @description     A peer-to-peer bartering marketplace API with listing search, radius discovery and trade conversations
// @contact.name    API Support
// @contact.url     https://github.com/barterhub/barter-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token, sent as "Bearer <token>"
func main() {
	cmd.Execute()
}
