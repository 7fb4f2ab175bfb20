package models

type Course struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type Student struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	CourseIDs   []int  `json:"course_ids"`
}

func (s Student) Enrolled(courseID int) bool {
	for _, id := range s.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}
