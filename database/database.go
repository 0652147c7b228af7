package database

import (
	"fmt"
	"log"

	"sambert/config"
	"sambert/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
func Init(cfg *config.Config) error {
	// 构建 MySQL DSN 连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)  // 最大空闲连接数
	sqlDB.SetMaxOpenConns(100) // 最大打开连接数

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Spending{},
		&models.IOU{},
	); err != nil {
		return err
	}

	if err := Seed(DB, cfg); err != nil {
		return err
	}

	log.Println("数据库初始化成功")
	return nil
}

// Seed 写入种子数据（幂等：成员按 ID 补齐，类别仅在表为空时写入）
func Seed(db *gorm.DB, cfg *config.Config) error {
	// 家庭成员来自配置，缺哪个补哪个
	for _, m := range cfg.Household.Members {
		var count int64
		db.Model(&models.User{}).Where("id = ?", m.ID).Count(&count)
		if count > 0 {
			continue
		}
		user := models.User{ID: m.ID, Name: m.Name}
		if m.BudgetCap != "" {
			cap, err := decimal.NewFromString(m.BudgetCap)
			if err != nil {
				return fmt.Errorf("成员 %s 的 budget_cap 无法解析: %w", m.Name, err)
			}
			user.BudgetCap = &cap
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("写入成员 %s 失败: %w", m.Name, err)
		}
		log.Printf("已写入成员: %s (ID=%d)", m.Name, m.ID)
	}

	// 初始化默认消费类别（仅当表为空时）
	var catCount int64
	db.Model(&models.Category{}).Count(&catCount)
	if catCount == 0 {
		cats := models.DefaultCategories()
		if err := db.Create(&cats).Error; err != nil {
			return fmt.Errorf("写入默认类别失败: %w", err)
		}
		log.Printf("已写入 %d 个默认类别", len(cats))
	}

	return nil
}

// ResetAndSeed 清空全部业务数据并重新写入种子数据
// 仅供开发 / 演示环境的 POST /api/v1/seed 使用，release 模式下路由层会拒绝
func ResetAndSeed(db *gorm.DB, cfg *config.Config) error {
	tables := []interface{}{
		&models.IOU{},
		&models.Spending{},
		&models.Category{},
		&models.User{},
	}
	for _, table := range tables {
		if err := db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("清空数据失败: %w", err)
		}
	}
	return Seed(db, cfg)
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
