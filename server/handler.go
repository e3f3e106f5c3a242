package server

import (
	_ "embed"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/picsan-cli/picsan/constant"
	"github.com/picsan-cli/picsan/key"
	"github.com/picsan-cli/picsan/log"
	"github.com/picsan-cli/picsan/network"
	"github.com/picsan-cli/picsan/provider"
	"github.com/picsan-cli/picsan/resolve"
	"github.com/picsan-cli/picsan/search"
	"github.com/picsan-cli/picsan/source"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

//go:embed index.html
var indexPage []byte

type handler struct {
	registry *provider.Registry
}

func (h *handler) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}

type parserEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (h *handler) parsers(c *gin.Context) {
	entries := lo.Map(h.registry.List(), func(p *provider.Provider, _ int) parserEntry {
		return parserEntry{Code: p.ID, Name: p.Name}
	})
	c.JSON(http.StatusOK, success(entries))
}

type albumEntry struct {
	Name  string `json:"name"`
	Cover string `json:"cover"`
	URL   string `json:"url"`
}

type searchData struct {
	Albums    []albumEntry `json:"albums"`
	PageTotal int          `json:"page_total"`
}

func (h *handler) search(c *gin.Context) {
	query := search.Query{
		Parser:  c.Query("parser_code"),
		Keyword: c.Query("keyword"),
		Page:    intQuery(c, "page", 1),
		Size:    intQuery(c, "size", defaultSize()),
	}

	result, err := search.Execute(c.Request.Context(), h.registry, query)
	if err != nil {
		fail(c, err)
		return
	}

	albums := lo.Map(result.Albums, func(a *source.Album, _ int) albumEntry {
		return albumEntry{Name: a.Name, Cover: a.Cover, URL: a.Ref}
	})
	c.JSON(http.StatusOK, success(searchData{Albums: albums, PageTotal: result.PageTotal}))
}

func (h *handler) pictures(c *gin.Context) {
	pictures, err := resolve.Pictures(c.Request.Context(), h.registry, c.Query("parser_code"), c.Query("url"))
	if err != nil {
		fail(c, err)
		return
	}

	// The client never talks to the upstream CDN directly, every picture is
	// served back through the forward proxy route.
	links := lo.Map(pictures, func(p *source.Picture, _ int) string {
		return "/album/picture?url=" + url.QueryEscape(p.URL)
	})
	c.JSON(http.StatusOK, success(links))
}

func (h *handler) forwardPicture(c *gin.Context) {
	raw := c.Query("url")
	if raw == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, raw, nil)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		log.Errorf("forward picture %s: %v", raw, err)
		c.Status(http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Status(http.StatusBadGateway)
		return
	}

	c.DataFromReader(resp.StatusCode, resp.ContentLength, resp.Header.Get("Content-Type"), resp.Body, nil)
}

func fail(c *gin.Context, err error) {
	status, code := classify(err)
	c.JSON(status, failure(code, err.Error()))
}

func defaultSize() int {
	if size := viper.GetInt(key.SearchDefaultSize); size >= 1 {
		return size
	}
	return 10
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
