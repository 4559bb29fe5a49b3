package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/repository"
)

// ── 내보내기 모듈 비즈니스 오류 ──

var (
	ErrExportNoClasses    = errors.New("해당 학년에 학급이 없습니다")
	ErrExportNoEvents     = errors.New("해당 날짜에 진행 중인 종목이 없습니다")
	ErrExportGenerateFail = errors.New("Excel 파일 생성에 실패했습니다")
)

// ExportService 대회 결과 내보내기 비즈니스 인터페이스
//
// 설계 설명:
//   - (학년, 날짜) 순위표를 Excel (.xlsx) 한 장으로 내보낸다
//   - 열: 순위 | 학급 | 종목별 점수… | 합계
//   - bytes.Buffer 로 반환하고 Handler 층이 응답 헤더를 설정한 뒤 쓴다
type ExportService interface {
	// ExportStandings 학년 순위표를 Excel 로 내보낸다
	ExportStandings(ctx context.Context, grade int, date string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService ExportService 인스턴스 생성
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportStandings — 학년 순위표 Excel 내보내기
// ═══════════════════════════════════════════════════════════
//
// 출력 형식:
//   - Sheet "순위표" 한 장
//   - 제목 행: "N학년 순위표 (YYYY-MM-DD)"
//   - 표 머리: 순위 | 학급 | <종목 이름>… | 합계
//   - 데이터 행: 총점 내림차순, 동점은 조회 순서 유지
//
// 반환값: buf(Excel 내용), filename(권장 파일명), error

func (s *exportService) ExportStandings(ctx context.Context, grade int, date string) (*bytes.Buffer, string, error) {
	if grade < 1 || grade > 6 {
		return nil, "", ErrGradeInvalid
	}

	// 1. 학년 설정 조회 후 (학년, 날짜) 유효 설정으로 해석
	cfg, err := s.repo.GradeConfig.GetByGrade(ctx, grade)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrExportNoEvents
		}
		s.logger.Error("학년 설정 조회 실패", zap.Int("grade", grade), zap.Error(err))
		return nil, "", err
	}
	effective := resolveDateConfig(cfg, date)

	// 2. 활성 종목 해석: 전역 템플릿(생성순) → 그 날짜의 복사 종목
	events, err := s.repo.Event.List(ctx)
	if err != nil {
		s.logger.Error("종목 목록 조회 실패", zap.Error(err))
		return nil, "", err
	}

	type column struct {
		eventID string
		name    string
	}
	var columns []column
	for i := range events {
		if setting, ok := effective[events[i].EventID]; ok && setting.Selected {
			columns = append(columns, column{eventID: events[i].EventID, name: events[i].Name})
		}
	}
	for _, info := range cfg.CustomEvents[date] {
		if setting, ok := effective[info.ID]; ok && setting.Selected {
			columns = append(columns, column{eventID: info.ID, name: info.Name})
		}
	}
	if len(columns) == 0 {
		return nil, "", ErrExportNoEvents
	}

	// 3. 학급 조회 후 순위 계산
	classes, err := s.repo.Class.ListByGrade(ctx, grade)
	if err != nil {
		s.logger.Error("학급 목록 조회 실패", zap.Int("grade", grade), zap.Error(err))
		return nil, "", err
	}
	if len(classes) == 0 {
		return nil, "", ErrExportNoClasses
	}

	activeIDs := make([]string, 0, len(columns))
	for _, col := range columns {
		activeIDs = append(activeIDs, col.eventID)
	}
	standings := rankClasses(classes, activeIDs)

	classByID := make(map[string]*model.ClassTeam, len(classes))
	for i := range classes {
		classByID[classes[i].ClassID] = &classes[i]
	}

	// 4. Excel 생성
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "순위표"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 열 너비
	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 14)
	for i := range columns {
		col, _ := excelize.ColumnNumberToName(3 + i)
		f.SetColWidth(sheetName, col, col, 16)
	}
	totalCol, _ := excelize.ColumnNumberToName(3 + len(columns))
	f.SetColWidth(sheetName, totalCol, totalCol, 10)

	// 스타일
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 제목 행
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%d학년 순위표 (%s)", grade, date))
	f.MergeCell(sheetName, "A1", cell(totalCol, 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 표 머리
	row := 2
	f.SetCellValue(sheetName, cell("A", row), "순위")
	f.SetCellValue(sheetName, cell("B", row), "학급")
	for i, col := range columns {
		name, _ := excelize.ColumnNumberToName(3 + i)
		f.SetCellValue(sheetName, cell(name, row), col.name)
	}
	f.SetCellValue(sheetName, cell(totalCol, row), "합계")

	// 데이터 행
	row = 3
	for _, st := range standings {
		f.SetCellValue(sheetName, cell("A", row), st.Rank)
		f.SetCellValue(sheetName, cell("B", row), st.Name)

		class := classByID[st.ClassID]
		for i, col := range columns {
			name, _ := excelize.ColumnNumberToName(3 + i)
			score := 0
			if class != nil {
				if res, ok := class.Results[col.eventID]; ok {
					score = res.Score
				}
			}
			f.SetCellValue(sheetName, cell(name, row), score)
		}
		f.SetCellValue(sheetName, cell(totalCol, row), st.Total)
		row++
	}

	// buffer 로 기록
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("Excel 기록 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("순위표_%d학년_%s.xlsx", grade, date)
	return buf, filename, nil
}

// ── 보조 함수 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
