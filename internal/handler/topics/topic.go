// File: internal/handler/topics/topic.go
package topics

import (
	"errors"
	"net/http"
	"strings"

	"feedback-admin/internal/api"
	"feedback-admin/internal/database"
	"feedback-admin/internal/handler"
	"feedback-admin/internal/model"
	"feedback-admin/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listTopics  = store.ListTopics
	createTopic = store.CreateTopic
	updateTopic = store.UpdateTopic
	deleteTopic = store.DeleteTopic
)

func serverError(c echo.Context, op string, err error) error {
	c.Logger().Errorf("%s: %v", op, err)
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error"})
}

// ListTopicsHandler 由新到舊列出議題
// @Summary     List topics
// @Tags        topics
// @Produce     json
// @Success     200 {array}  model.Topic
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    CookieAuth
// @Router      /admin/topics [get]
func ListTopicsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		topics, err := listTopics(c.Request().Context(), db)
		if err != nil {
			return serverError(c, "list topics", err)
		}
		return c.JSON(http.StatusOK, topics)
	}
}

// CreateTopicHandler 新增議題
// @Summary     Create a topic
// @Tags        topics
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateTopicRequest true "議題資料"
// @Success     201  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    CookieAuth
// @Router      /admin/topics [post]
func CreateTopicHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateTopicRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		category, ok := model.ParseCategory(req.Category)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid category"})
		}
		if req.Votes < 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "votes must not be negative"})
		}

		_, err := createTopic(c.Request().Context(), db, &model.Topic{
			Title:       strings.TrimSpace(req.Title),
			Description: req.Description,
			Category:    category,
			Votes:       req.Votes,
		})
		if err != nil {
			return serverError(c, "create topic", err)
		}
		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "Topic created successfully"})
	}
}

// UpdateTopicHandler 部分更新議題
// @Summary     Update a topic by ID
// @Tags        topics
// @Accept      json
// @Produce     json
// @Param       id   path     string                 true "議題 ID (UUID)"
// @Param       body body     api.UpdateTopicRequest true "更新欄位"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    CookieAuth
// @Router      /admin/topics/{id} [put]
func UpdateTopicHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c, "id")
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid topic ID"})
		}

		var req api.UpdateTopicRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		upd := model.TopicUpdate{Description: req.Description}
		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			upd.Title = &title
		}
		if req.Category != nil {
			category, ok := model.ParseCategory(*req.Category)
			if !ok {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid category"})
			}
			upd.Category = &category
		}
		if req.Votes != nil {
			if *req.Votes < 0 {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "votes must not be negative"})
			}
			upd.Votes = req.Votes
		}

		err := updateTopic(c.Request().Context(), db, id, upd)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Topic not found"})
		}
		if err != nil {
			return serverError(c, "update topic", err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Topic updated successfully"})
	}
}

// DeleteTopicHandler 刪除議題；ID 不存在也回傳成功
// @Summary     Delete a topic by ID
// @Tags        topics
// @Produce     json
// @Param       id  path     string true "議題 ID (UUID)"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    CookieAuth
// @Router      /admin/topics/{id} [delete]
func DeleteTopicHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c, "id")
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid topic ID"})
		}
		if err := deleteTopic(c.Request().Context(), db, id); err != nil {
			return serverError(c, "delete topic", err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Topic deleted successfully"})
	}
}
