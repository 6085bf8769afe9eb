package handlers

import (
	"net/http"

	"github.com/aselzhanova/FitJourneyBackend/middleware"
	"github.com/aselzhanova/FitJourneyBackend/models"
	"github.com/aselzhanova/FitJourneyBackend/services"
	"github.com/gin-gonic/gin"
)

func AddProgressPhoto(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var photo models.ProgressPhoto
	if err := c.ShouldBindJSON(&photo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.AddProgressPhoto(user.ID, photo); err != nil {
		serviceError(c, "add_progress_photo", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Progress photo added"})
}

func GetProgressPhotos(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	photos, err := services.GetProgressPhotos(user.ID)
	if err != nil {
		serviceError(c, "get_progress_photos", err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

// DeleteProgressPhoto addresses the photo by its file path, not index.
func DeleteProgressPhoto(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	filePath := c.Query("path")
	if filePath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing path"})
		return
	}
	if err := services.DeleteProgressPhoto(user.ID, filePath); err != nil {
		serviceError(c, "delete_progress_photo", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Progress photo deleted"})
}

type fileReferenceInput struct {
	Path string `json:"path" binding:"required"`
	Hash string `json:"hash" binding:"required"`
}

func RegisterFileReference(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var input fileReferenceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.RegisterFileReference(user.ID, input.Path, input.Hash); err != nil {
		serviceError(c, "register_file_reference", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "File reference registered"})
}

func GetFileReference(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing path"})
		return
	}
	ref, err := services.GetFileReference(user.ID, path)
	if err != nil {
		serviceError(c, "get_file_reference", err)
		return
	}
	c.JSON(http.StatusOK, ref)
}

func ListFileReferences(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	refs, err := services.ListFileReferences(user.ID)
	if err != nil {
		serviceError(c, "list_file_references", err)
		return
	}
	c.JSON(http.StatusOK, refs)
}

func DropFileReference(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing path"})
		return
	}
	if err := services.DropFileReference(user.ID, path); err != nil {
		serviceError(c, "drop_file_reference", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "File reference dropped"})
}
