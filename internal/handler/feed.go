package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ietdavv/iet-portal/internal/response"
	"github.com/ietdavv/iet-portal/internal/service"
)

// serveFeed loads one listing into a fresh feed and writes it under key.
// A failed load still answers with the (empty) list next to the error so
// the page can render its empty state.
func serveFeed[T any](c *gin.Context, key string, fetch func(ctx context.Context) ([]T, error)) {
	feed := service.NewFeed[T](nil)
	if err := feed.Load(c.Request.Context(), fetch); err != nil {
		var fe *service.FetchError
		if errors.As(err, &fe) {
			response.FailWithData(c, http.StatusServiceUnavailable, response.ErrFetchFailed, gin.H{key: feed.Items()})
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	items := feed.Items()
	response.Success(c, http.StatusOK, gin.H{key: items, "count": len(items)})
}
