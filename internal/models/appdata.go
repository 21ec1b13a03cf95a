package models

import "time"

type User struct {
	Username    string     `json:"username"`
	Password    string     `json:"password"`
	IsAdmin     bool       `json:"isAdmin"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
}

func (u User) Clone() User {
	out := u
	if u.LastLoginAt != nil {
		at := *u.LastLoginAt
		out.LastLoginAt = &at
	}
	return out
}

type UserSettings struct {
	Username              string        `json:"username" validate:"required"`
	MaxWordsPerSession    int           `json:"maxWordsPerSession" validate:"min=10,max=50"`
	DefaultSelectionType  SelectionType `json:"defaultSelectionType" validate:"oneof=pageRange singlePage frequency alphabet customList"`
	DefaultQuizMode       QuizMode      `json:"defaultQuizMode" validate:"oneof=enToZh zhToEn"`
	DefaultTTSMode        string        `json:"defaultTtsMode" validate:"oneof=wordOnly wordAndMeaning"`
	DefaultTTSIntervalSec int           `json:"defaultTtsIntervalSec" validate:"min=1,max=5"`
}

// DefaultSettings returns the settings a user has before saving any.
func DefaultSettings(username string) UserSettings {
	return UserSettings{
		Username:              username,
		MaxWordsPerSession:    25,
		DefaultSelectionType:  SelectionPageRange,
		DefaultQuizMode:       QuizModeEnToZh,
		DefaultTTSMode:        "wordOnly",
		DefaultTTSIntervalSec: 2,
	}
}

// AppData is the whole persisted document. It is read into memory at startup
// and rewritten wholesale on every mutation.
type AppData struct {
	Users        []User         `json:"users"`
	Records      []QuizRecord   `json:"records"`
	UserSettings []UserSettings `json:"userSettings"`
}

func (d AppData) Clone() AppData {
	out := AppData{
		Users:        make([]User, 0, len(d.Users)),
		Records:      make([]QuizRecord, 0, len(d.Records)),
		UserSettings: append([]UserSettings(nil), d.UserSettings...),
	}
	for _, u := range d.Users {
		out.Users = append(out.Users, u.Clone())
	}
	for _, r := range d.Records {
		out.Records = append(out.Records, r.Clone())
	}
	return out
}
