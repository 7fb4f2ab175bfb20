package api

import (
	"context"
	"fmt"
	"net/http"

	"tutordash/frontend/models"
)

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ProgressInput struct {
	CourseID   int     `json:"courseId"`
	Percentage float64 `json:"percentage"`
}

type StudentInput struct {
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	DisplayName string `json:"display_name"`
	CourseIDs   []int  `json:"course_ids"`
}

type UserInput struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

type StudentProfileInput struct {
	DisplayName string `json:"display_name"`
	CourseIDs   []int  `json:"course_ids"`
}

type CourseInput struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var res struct {
		Token string `json:"token"`
	}
	err := c.Do(ctx, "", http.MethodPost, "/api/auth/login", LoginInput{Username: username, Password: password}, &res)
	if err != nil {
		return "", err
	}
	return res.Token, nil
}

func (c *Client) Me(ctx context.Context, token string) (models.Identity, error) {
	var me models.Identity
	err := c.Do(ctx, token, http.MethodGet, "/api/auth/me", nil, &me)
	return me, err
}

func (c *Client) SubmitProgress(ctx context.Context, token string, courseID int, percentage float64) error {
	return c.Do(ctx, token, http.MethodPost, "/api/progress", ProgressInput{CourseID: courseID, Percentage: percentage}, nil)
}

func (c *Client) StudentProgress(ctx context.Context, token string, studentID int) ([]models.ProgressEntry, error) {
	var entries []models.ProgressEntry
	err := c.Do(ctx, token, http.MethodGet, fmt.Sprintf("/api/students/%d/progress", studentID), nil, &entries)
	return entries, err
}

func (c *Client) StudentCourses(ctx context.Context, token string, studentID int) ([]models.Course, error) {
	var courses []models.Course
	err := c.Do(ctx, token, http.MethodGet, fmt.Sprintf("/api/students/%d/courses", studentID), nil, &courses)
	return courses, err
}

func (c *Client) ListStudents(ctx context.Context, token string) ([]models.Student, error) {
	var students []models.Student
	err := c.Do(ctx, token, http.MethodGet, "/api/admin/students", nil, &students)
	return students, err
}

func (c *Client) CreateStudent(ctx context.Context, token string, in StudentInput) error {
	return c.Do(ctx, token, http.MethodPost, "/api/admin/students", in, nil)
}

func (c *Client) UpdateStudent(ctx context.Context, token string, studentID int, in StudentProfileInput) error {
	return c.Do(ctx, token, http.MethodPatch, fmt.Sprintf("/api/admin/students/%d", studentID), in, nil)
}

func (c *Client) DeleteStudent(ctx context.Context, token string, studentID int) error {
	return c.Do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/admin/students/%d", studentID), nil, nil)
}

func (c *Client) UpdateUser(ctx context.Context, token string, userID int, in UserInput) error {
	return c.Do(ctx, token, http.MethodPatch, fmt.Sprintf("/api/admin/users/%d", userID), in, nil)
}

func (c *Client) ListCourses(ctx context.Context, token string) ([]models.Course, error) {
	var courses []models.Course
	err := c.Do(ctx, token, http.MethodGet, "/api/admin/courses", nil, &courses)
	return courses, err
}

func (c *Client) CreateCourse(ctx context.Context, token string, in CourseInput) error {
	return c.Do(ctx, token, http.MethodPost, "/api/admin/courses", in, nil)
}

func (c *Client) UpdateCourse(ctx context.Context, token string, courseID int, in CourseInput) error {
	return c.Do(ctx, token, http.MethodPatch, fmt.Sprintf("/api/admin/courses/%d", courseID), in, nil)
}

func (c *Client) DeleteCourse(ctx context.Context, token string, courseID int) error {
	return c.Do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/admin/courses/%d", courseID), nil, nil)
}

func (c *Client) DeleteProgressEntry(ctx context.Context, token string, studentID, progressID int) error {
	return c.Do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/admin/students/%d/progress/%d", studentID, progressID), nil, nil)
}
