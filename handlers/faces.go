package handlers

import (
	"errors"
	"net/http"

	"attendance/faces"

	"github.com/gin-gonic/gin"
)

func FacesList(c *gin.Context) {
	names, err := faceStore.Names()
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: "cannot list faces"})
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"names": names})
}

func FaceDelete(c *gin.Context) {
	name := c.PostForm("name")
	err := faceStore.Delete(name)
	if errors.Is(err, faces.ErrNotFound) || errors.Is(err, faces.ErrEmptyName) {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: "cannot delete face"})
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
