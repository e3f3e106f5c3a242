// Package server exposes the album browsing API over HTTP.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/picsan-cli/picsan/key"
	"github.com/picsan-cli/picsan/log"
	"github.com/picsan-cli/picsan/provider"
	"github.com/spf13/viper"
)

// New assembles the router with every album route bound to the given registry.
func New(registry *provider.Registry) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	h := &handler{registry: registry}

	router.GET("/album", h.index)
	router.GET("/album/parsers", h.parsers)
	router.GET("/album/search", h.search)
	router.GET("/album/pictures", h.pictures)
	router.GET("/album/picture", h.forwardPicture)

	return router
}

// Start runs the API server on the configured address until it fails.
func Start(registry *provider.Registry) error {
	address := viper.GetString(key.ServerAddress)
	log.Infof("serving album API on %s", address)
	return New(registry).Run(address)
}
