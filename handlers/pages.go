package handlers

import (
	"net/http"

	"attendance/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session key for the pending registration name, set by RegisterSubmit and
// read by the registration stream. Session-scoped so that two browsers
// registering at the same time cannot clobber each other's name.
const pendingNameKey = "pending_name"

func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", gin.H{})
}

func RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", gin.H{})
}

func RegisterSubmit(c *gin.Context) {
	name := c.PostForm("name")
	session := sessions.Default(c)
	session.Set(pendingNameKey, name)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: "cannot save session"})
		return
	}
	c.Redirect(http.StatusFound, "/register/camera")
}

func RegisterCameraPage(c *gin.Context) {
	session := sessions.Default(c)
	name, _ := session.Get(pendingNameKey).(string)
	c.HTML(http.StatusOK, "register_camera.tmpl", gin.H{"name": name})
}

func AttendancePage(c *gin.Context) {
	c.HTML(http.StatusOK, "attendance.tmpl", gin.H{})
}

func AttendanceRecords(c *gin.Context) {
	records, err := models.AllAttendance()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBErrorResponse)
		return
	}
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, records)
		return
	}
	c.HTML(http.StatusOK, "attendance_records.tmpl", gin.H{"records": records})
}
