package catalog

type Condition string

const (
	New         Condition = "New"
	Used        Condition = "Used"
	Refurbished Condition = "Refurbished"
)

type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	Condition   Condition `json:"condition"`
}

type ProductNew struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
	ImageURL    string    `json:"imageUrl" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Stock       int       `json:"stock" validate:"gte=0"`
	Rating      float64   `json:"rating" validate:"gte=0,lte=5"`
	Reviews     int       `json:"reviews" validate:"gte=0"`
	Condition   Condition `json:"condition" validate:"required,oneof=New Used Refurbished"`
}

type Module struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Course struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	ShortDescription string     `json:"shortDescription"`
	LongDescription  string     `json:"longDescription"`
	ImageURL         string     `json:"imageUrl"`
	Instructor       string     `json:"instructor"`
	Duration         string     `json:"duration"`
	Price            float64    `json:"price"`
	Difficulty       Difficulty `json:"difficulty"`
	Modules          []Module   `json:"modules"`
	LearningSchedule []string   `json:"learningSchedule,omitempty"`
}

type CourseNew struct {
	Title            string     `json:"title" validate:"required"`
	ShortDescription string     `json:"shortDescription" validate:"required"`
	LongDescription  string     `json:"longDescription" validate:"required"`
	ImageURL         string     `json:"imageUrl" validate:"required"`
	Instructor       string     `json:"instructor" validate:"required"`
	Duration         string     `json:"duration" validate:"required"`
	Price            float64    `json:"price" validate:"gte=0"`
	Difficulty       Difficulty `json:"difficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	Modules          []Module   `json:"modules" validate:"min=1,dive"`
	LearningSchedule []string   `json:"learningSchedule"`
}
