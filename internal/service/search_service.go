package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"newtube-go/internal/api/dto"
	infraES "newtube-go/internal/infra/elasticsearch"
	"newtube-go/internal/model"
	"newtube-go/internal/repository"
	"newtube-go/pkg/logger"

	"go.uber.org/zap"
)

type SearchService struct {
	videoRepo *repository.VideoRepository
}

func NewSearchService(videoRepo *repository.VideoRepository) *SearchService {
	return &SearchService{videoRepo: videoRepo}
}

// SearchVideos 搜索公开视频（ES 优先，不可用或失败则降级到数据库模糊匹配）
func (s *SearchService) SearchVideos(req *dto.SearchVideoRequest, viewerID int64) (*dto.SearchVideoData, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	if !infraES.Enabled() {
		return s.searchFromDB(req, viewerID)
	}

	data, err := s.searchFromES(req, viewerID)
	if err != nil {
		logger.Warn("ES search failed, fallback to DB", zap.Error(err))
		return s.searchFromDB(req, viewerID)
	}
	return data, nil
}

func (s *SearchService) searchFromES(req *dto.SearchVideoRequest, viewerID int64) (*dto.SearchVideoData, error) {
	query := buildSearchQuery(req)
	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := infraES.Search(ctx, infraES.VideosIndexName(), bytes.NewReader(queryJSON))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	videoIDs := make([]int64, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		videoIDs = append(videoIDs, h.Source.ID)
	}

	total := esResp.Hits.Total.Value
	if len(videoIDs) == 0 {
		return buildSearchData(nil, total, req.Page, req.PageSize), nil
	}

	// ES 只当倒排索引用：命中后回表取聚合行，按打分顺序重排
	rows, err := s.videoRepo.GetRowsByIDs(videoIDs, viewerID)
	if err != nil {
		return nil, err
	}

	rowMap := make(map[int64]*repository.VideoRow, len(rows))
	for i := range rows {
		rowMap[rows[i].ID] = &rows[i]
	}

	ordered := make([]repository.VideoRow, 0, len(videoIDs))
	for _, id := range videoIDs {
		if row, ok := rowMap[id]; ok && row.Visibility == model.VisibilityPublic {
			ordered = append(ordered, *row)
		}
	}

	return buildSearchData(ordered, total, req.Page, req.PageSize), nil
}

func buildSearchQuery(req *dto.SearchVideoRequest) map[string]interface{} {
	boolQ := map[string]interface{}{
		"filter": []interface{}{
			map[string]interface{}{"term": map[string]interface{}{"visibility": model.VisibilityPublic}},
		},
	}

	if q := strings.TrimSpace(req.Keyword); q != "" {
		boolQ["must"] = []interface{}{
			map[string]interface{}{
				"multi_match": map[string]interface{}{
					"query":    q,
					"fields":   []string{"title^3", "description^1"},
					"type":     "best_fields",
					"operator": "or",
				},
			},
		}
	}

	return map[string]interface{}{
		"query":   map[string]interface{}{"bool": boolQ},
		"_source": []string{"id"},
		"from":    (req.Page - 1) * req.PageSize,
		"size":    req.PageSize,
		"sort": []interface{}{
			map[string]interface{}{"_score": map[string]string{"order": "desc"}},
			map[string]interface{}{"updated_at": map[string]string{"order": "desc"}},
		},
	}
}

func (s *SearchService) searchFromDB(req *dto.SearchVideoRequest, viewerID int64) (*dto.SearchVideoData, error) {
	skip := (req.Page - 1) * req.PageSize
	rows, total, err := s.videoRepo.SearchPublic(strings.TrimSpace(req.Keyword), skip, req.PageSize, viewerID)
	if err != nil {
		return nil, err
	}
	return buildSearchData(rows, total, req.Page, req.PageSize), nil
}

func buildSearchData(rows []repository.VideoRow, total int64, page, pageSize int) *dto.SearchVideoData {
	items := make([]dto.VideoInfo, 0, len(rows))
	for i := range rows {
		items = append(items, toVideoInfo(&rows[i]))
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	return &dto.SearchVideoData{
		Videos:     items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
