package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"review-cycle-backend/internal/config"
	"review-cycle-backend/internal/database"
	"review-cycle-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type EmployeeData struct {
	EmpNo    string `yaml:"emp_no"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Position string `yaml:"position"`
	Role     string `yaml:"role"`
	TeamName string `yaml:"team_name"`
}

type KPIData struct {
	TeamName    string     `yaml:"team_name"`
	Year        int        `yaml:"year"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Weight      int        `yaml:"weight"`
	Tasks       []TaskData `yaml:"tasks"`
}

type TaskData struct {
	EmpNo   string `yaml:"emp_no"`
	Name    string `yaml:"name"`
	Summary string `yaml:"summary"`
}

type KeywordData struct {
	Name      string `yaml:"name"`
	Sentiment string `yaml:"sentiment"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type KPIsFile struct {
	KPIs []KPIData `yaml:"kpis"`
}

type KeywordsFile struct {
	Keywords []KeywordData `yaml:"keywords"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	teams, err := loadYAML(dataDir, "teams", func(f TeamsFile) []TeamData { return f.Teams })
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	employees, err := loadYAML(dataDir, "employees", func(f EmployeesFile) []EmployeeData { return f.Employees })
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}
	kpis, err := loadYAML(dataDir, "kpis", func(f KPIsFile) []KPIData { return f.KPIs })
	if err != nil {
		return fmt.Errorf("failed to load kpis: %w", err)
	}
	keywords, err := loadYAML(dataDir, "keywords", func(f KeywordsFile) []KeywordData { return f.Keywords })
	if err != nil {
		return fmt.Errorf("failed to load keywords: %w", err)
	}

	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	employeeMap := make(map[string]*models.Employee)
	employeeCreated := 0
	for _, employeeData := range employees {
		employee, created, err := createEmployee(db, employeeData, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create employee %s: %w", employeeData.EmpNo, err)
		}
		employeeMap[employeeData.EmpNo] = employee
		if created {
			employeeCreated++
		}
	}
	log.Printf("📋 Employees: %d created, %d total", employeeCreated, len(employees))

	kpiCreated, taskCreated := 0, 0
	for _, kpiData := range kpis {
		created, tasks, err := createKPI(db, kpiData, teamMap, employeeMap)
		if err != nil {
			return fmt.Errorf("failed to create kpi %s: %w", kpiData.Name, err)
		}
		if created {
			kpiCreated++
		}
		taskCreated += tasks
	}
	log.Printf("📋 KPIs: %d created, %d total; tasks: %d created", kpiCreated, len(kpis), taskCreated)

	keywordCreated := 0
	for _, keywordData := range keywords {
		created, err := createKeyword(db, keywordData)
		if err != nil {
			return fmt.Errorf("failed to create keyword %s: %w", keywordData.Name, err)
		}
		if created {
			keywordCreated++
		}
	}
	log.Printf("📋 Keywords: %d created, %d total", keywordCreated, len(keywords))

	return nil
}

// loadYAML collects the entries of every .yaml file under dataDir whose path contains kind
func loadYAML[F any, T any](dataDir, kind string, entries func(F) []T) ([]T, error) {
	var all []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, kind) {
			var file F
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			all = append(all, entries(file)...)
		}
		return nil
	})

	return all, err
}

func createTeam(db *gorm.DB, teamData TeamData) (*models.Team, bool, error) {
	var team models.Team
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}

		team = models.Team{
			Name:        teamData.Name,
			Description: teamData.Description,
		}
		if err := db.Create(&team).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create team: %w", err)
		}
		return &team, true, nil
	}

	return &team, false, nil
}

func createEmployee(db *gorm.DB, employeeData EmployeeData, teamMap map[string]*models.Team) (*models.Employee, bool, error) {
	role := models.RoleMember
	if employeeData.Role != "" {
		role = models.Role(strings.ToUpper(employeeData.Role))
	}
	if !role.IsValid() {
		return nil, false, fmt.Errorf("unknown role %q", employeeData.Role)
	}

	var teamID *uuid.UUID
	if employeeData.TeamName != "" {
		team := teamMap[employeeData.TeamName]
		if team == nil {
			return nil, false, fmt.Errorf("team %s not found for employee %s", employeeData.TeamName, employeeData.EmpNo)
		}
		teamID = &team.ID
	}

	var employee models.Employee
	if err := db.Where("emp_no = ?", employeeData.EmpNo).First(&employee).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fmt.Errorf("failed to query employee: %w", err)
		}

		employee = models.Employee{
			EmpNo:    employeeData.EmpNo,
			Name:     employeeData.Name,
			Email:    employeeData.Email,
			Position: employeeData.Position,
			Role:     role,
			TeamID:   teamID,
		}
		if err := db.Create(&employee).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create employee: %w", err)
		}
		return &employee, true, nil
	}

	return &employee, false, nil
}

// createKPI finds or creates the KPI and adds the tasks that are not stored yet
func createKPI(db *gorm.DB, kpiData KPIData, teamMap map[string]*models.Team, employeeMap map[string]*models.Employee) (bool, int, error) {
	team := teamMap[kpiData.TeamName]
	if team == nil {
		return false, 0, fmt.Errorf("team %s not found for kpi %s", kpiData.TeamName, kpiData.Name)
	}

	created := false
	var kpi models.TeamKPI
	err := db.Where("team_id = ? AND year = ? AND name = ?", team.ID, kpiData.Year, kpiData.Name).First(&kpi).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, fmt.Errorf("failed to query kpi: %w", err)
		}

		kpi = models.TeamKPI{
			TeamID:      team.ID,
			Year:        kpiData.Year,
			Name:        kpiData.Name,
			Description: kpiData.Description,
			Weight:      kpiData.Weight,
		}
		if err := db.Create(&kpi).Error; err != nil {
			return false, 0, fmt.Errorf("failed to create kpi: %w", err)
		}
		created = true
	}

	tasks := 0
	for _, taskData := range kpiData.Tasks {
		employee := employeeMap[taskData.EmpNo]
		if employee == nil {
			return created, tasks, fmt.Errorf("employee %s not found for kpi %s", taskData.EmpNo, kpiData.Name)
		}

		var count int64
		if err := db.Model(&models.Task{}).
			Where("team_kpi_id = ? AND employee_id = ?", kpi.ID, employee.ID).
			Count(&count).Error; err != nil {
			return created, tasks, fmt.Errorf("failed to query task: %w", err)
		}
		if count > 0 {
			continue
		}

		task := models.Task{
			TeamKPIID:  kpi.ID,
			EmployeeID: employee.ID,
			Name:       taskData.Name,
			Summary:    taskData.Summary,
		}
		if err := db.Create(&task).Error; err != nil {
			return created, tasks, fmt.Errorf("failed to create task: %w", err)
		}
		tasks++
	}

	return created, tasks, nil
}

func createKeyword(db *gorm.DB, keywordData KeywordData) (bool, error) {
	sentiment := models.KeywordSentiment(strings.ToUpper(keywordData.Sentiment))
	if sentiment != models.KeywordSentimentPositive && sentiment != models.KeywordSentimentNegative {
		return false, fmt.Errorf("unknown sentiment %q", keywordData.Sentiment)
	}

	var keyword models.Keyword
	if err := db.Where("name = ?", keywordData.Name).First(&keyword).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("failed to query keyword: %w", err)
		}

		keyword = models.Keyword{Name: keywordData.Name, Sentiment: sentiment}
		if err := db.Create(&keyword).Error; err != nil {
			return false, fmt.Errorf("failed to create keyword: %w", err)
		}
		return true, nil
	}

	return false, nil
}
