package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/studentmatch/backend/internal/config"
	"github.com/studentmatch/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Seeds the database with demo accounts and projects for local development.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	dbConfig := config.LoadDBConfig()
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	if err := db.Migrator().DropTable(&model.StudentInterest{}, &model.Project{}, &model.User{}); err != nil {
		log.Fatal("drop tables failed: ", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Project{}, &model.StudentInterest{}); err != nil {
		log.Fatal("migration failed: ", err)
	}

	teacher := &model.User{
		ID:           uuid.New(),
		Email:        "teacher@test.com",
		PasswordHash: mustHash("teacher123"),
		Role:         model.RoleTeacher,
	}
	student := &model.User{
		ID:           uuid.New(),
		Email:        "student@test.com",
		PasswordHash: mustHash("student123"),
		Role:         model.RoleStudent,
	}
	if err := db.Create(teacher).Error; err != nil {
		log.Fatal("create teacher failed: ", err)
	}
	if err := db.Create(student).Error; err != nil {
		log.Fatal("create student failed: ", err)
	}

	projects := []model.Project{
		{
			Name:              "AI Image Recognition Project",
			Description:       "Medical image analysis using deep learning and computer vision technologies, including X-ray analysis and lesion detection. The project will use PyTorch framework and develop interactive visualization interfaces to display analysis results.",
			Field:             "Healthcare",
			SkillRequirements: "Python, PyTorch, Computer Vision, Deep Learning",
		},
		{
			Name:              "Smart Medical Diagnosis Assistant",
			Description:       "Intelligent consultation system based on natural language processing and machine learning, capable of understanding patient descriptions and providing preliminary diagnostic recommendations. The project uses BERT model to process medical text data.",
			Field:             "Healthcare",
			SkillRequirements: "Python, NLP, Machine Learning, BERT",
		},
		{
			Name:              "Blockchain Medical Data System",
			Description:       "Build a secure and transparent medical data sharing platform using blockchain technology to ensure patient data privacy and security. Includes smart contract development and web interface implementation.",
			Field:             "Healthcare",
			SkillRequirements: "Blockchain, Solidity, Smart Contracts, Web Development",
		},
		{
			Name:              "Blockchain Application Development",
			Description:       "Develop Ethereum-based decentralized applications, implementing smart contract deployment and invocation. The project includes DApp frontend development and smart contract programming.",
			Field:             "Blockchain",
			SkillRequirements: "Ethereum, Solidity, Web3.js, JavaScript, DApp Development",
		},
		{
			Name:              "Smart Home Control System",
			Description:       "IoT-based smart home control system enabling remote control, automation scenarios, and voice interaction. Uses MQTT protocol and ESP32 development board to create a complete smart home solution.",
			Field:             "IoT",
			SkillRequirements: "IoT, MQTT, ESP32, C++, Embedded Systems",
		},
		{
			Name:              "Network Security Vulnerability Detection Platform",
			Description:       "Automated network security vulnerability scanning and detection platform capable of security assessment and risk analysis for enterprise internal networks. Uses Python and open-source security tools to build a complete security testing framework.",
			Field:             "Cybersecurity",
			SkillRequirements: "Python, Cybersecurity, Network Scanning, Linux",
		},
		{
			Name:              "Big Data Analysis and Visualization Platform",
			Description:       "Enterprise-level big data processing and analysis platform providing intuitive data visualization interface and predictive analysis functions. Uses Hadoop ecosystem and D3.js visualization library to implement data storage, processing, and display.",
			Field:             "Big Data",
			SkillRequirements: "Big Data, Hadoop, Spark, D3.js, Data Visualization, Python",
		},
	}
	for i := range projects {
		projects[i].TeacherID = teacher.ID
		if err := db.Create(&projects[i]).Error; err != nil {
			log.Fatal("create project failed: ", err)
		}
	}

	log.Println("Database seeded successfully!")
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	return string(hash)
}
