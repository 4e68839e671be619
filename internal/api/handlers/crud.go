package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/storeops-go/pkg/response"
	"github.com/linskybing/storeops-go/pkg/utils"
)

// reply writes out with status 200 or maps err.
func reply[T any](c *gin.Context, out T, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func createJSON[In, Out any](c *gin.Context, create func(In) (Out, error)) {
	var input In
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	out, err := create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func updateJSON[In, Out any](c *gin.Context, update func(uint, In) (Out, error)) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var input In
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	out, err := update(id, input)
	reply(c, out, err)
}

func getByID[Out any](c *gin.Context, get func(uint) (Out, error)) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	out, err := get(id)
	reply(c, out, err)
}

func deleteByID(c *gin.Context, del func(uint) error, msg string) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := del(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: msg})
}

func listQuery[Q, Out any](c *gin.Context, list func(Q) (Out, error)) {
	var q Q
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	out, err := list(q)
	reply(c, out, err)
}

// pageParams reads page and limit, leaving zero for anything unparsable so
// the service applies its defaults.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return page, limit
}
