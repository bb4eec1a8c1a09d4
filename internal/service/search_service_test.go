package service

import (
	"testing"

	"newtube-go/internal/api/dto"
	"newtube-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSearchQuery(t *testing.T) {
	query := buildSearchQuery(&dto.SearchVideoRequest{Keyword: " golang tutorial ", Page: 2, PageSize: 10})

	assert.Equal(t, 10, query["from"])
	assert.Equal(t, 10, query["size"])
	assert.Equal(t, []string{"id"}, query["_source"])

	boolQ := query["query"].(map[string]interface{})["bool"].(map[string]interface{})
	// 无论关键词如何，都强制过滤 visibility=public
	require.Len(t, boolQ["filter"], 1)

	must := boolQ["must"].([]interface{})
	require.Len(t, must, 1)
	mm := must[0].(map[string]interface{})["multi_match"].(map[string]interface{})
	assert.Equal(t, "golang tutorial", mm["query"])
}

func TestBuildSearchQueryEmptyKeyword(t *testing.T) {
	query := buildSearchQuery(&dto.SearchVideoRequest{Keyword: "   ", Page: 1, PageSize: 20})

	boolQ := query["query"].(map[string]interface{})["bool"].(map[string]interface{})
	_, hasMust := boolQ["must"]
	assert.False(t, hasMust)
}

func TestBuildSearchData(t *testing.T) {
	rows := []repository.VideoRow{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}

	data := buildSearchData(rows, 41, 2, 20)
	assert.Len(t, data.Videos, 2)
	assert.Equal(t, int64(41), data.Total)
	assert.Equal(t, int64(3), data.TotalPages)

	empty := buildSearchData(nil, 0, 1, 20)
	assert.Empty(t, empty.Videos)
	assert.Equal(t, int64(0), empty.TotalPages)
}
