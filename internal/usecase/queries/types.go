package queries

// Read models (DTO for read side)

type ReservationOptionView struct {
	OptionID    int    `json:"option_id"`
	OptionName  string `json:"option_name"`
	OptionPrice int    `json:"option_price"`
}

// ReservationView is a backend reservation row decorated for one viewer
// role. StatusLabel is derived locally from the status taxonomy.
type ReservationView struct {
	ID               int                     `json:"id"`
	Date             string                  `json:"date"`
	Location         string                  `json:"location"`
	Status           string                  `json:"status"`
	StatusLabel      string                  `json:"status_label"`
	ProgressStatus   string                  `json:"progress_status"`
	TotalPoints      int                     `json:"total_points"`
	CastRewardPoints int                     `json:"cast_reward_points"`
	SelectedTime     int                     `json:"selected_time"`
	Fare             int                     `json:"fare"`
	Shimei           int                     `json:"shimei"`
	CourseID         int                     `json:"course_id"`
	UserID           string                  `json:"user_id"`
	CastID           string                  `json:"cast_id"`
	UserName         string                  `json:"user_name"`
	Options          []ReservationOptionView `json:"options"`
}

type CourseView struct {
	ID              int    `json:"id"`
	CourseType      int    `json:"course_type"`
	CourseName      string `json:"course_name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	CostPoints      int    `json:"cost_points"`
	RewardPoints    int    `json:"cast_reward_points"`
}

type OptionView struct {
	ID          int    `json:"id"`
	CourseID    int    `json:"course_id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}
