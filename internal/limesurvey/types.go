// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package limesurvey

// In this file: entity types returned by the RemoteControl API.

import (
	"bytes"
	"fmt"
	"strconv"
)

// IntString is an integer that the API serialises either as a JSON number or
// as a string, depending on the LimeSurvey version and database driver.
type IntString int

func (i *IntString) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*i = 0
		return nil
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("IntString: %w", err)
	}
	*i = IntString(n)
	return nil
}

func (i IntString) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(i), 10), nil
}

func (i IntString) Int() int { return int(i) }

// YesNo is a boolean that the API serialises as "Y"/"N".
type YesNo bool

func (y *YesNo) UnmarshalJSON(b []byte) error {
	*y = YesNo(bytes.Equal(bytes.Trim(b, `"`), []byte("Y")))
	return nil
}

func (y YesNo) MarshalJSON() ([]byte, error) {
	if y {
		return []byte(`"Y"`), nil
	}
	return []byte(`"N"`), nil
}

func (y YesNo) Bool() bool { return bool(y) }

// Survey is a single entry of the list_surveys result.
type Survey struct {
	ID        IntString `json:"sid"`
	GroupID   IntString `json:"gsid"`
	Title     string    `json:"surveyls_title"`
	StartDate string    `json:"startdate"`
	Expires   string    `json:"expires"`
	Active    YesNo     `json:"active"`
}

// QuestionGroup is a single entry of the list_groups result.
type QuestionGroup struct {
	ID          IntString `json:"gid"`
	SurveyID    IntString `json:"sid"`
	Name        string    `json:"group_name"`
	Description string    `json:"description"`
	Order       IntString `json:"group_order"`
	Language    string    `json:"language,omitempty"`
	Relevance   string    `json:"grelevance,omitempty"`
}

// Question is a single entry of the list_questions result.
type Question struct {
	ID        IntString `json:"qid"`
	ParentID  IntString `json:"parent_qid"`
	SurveyID  IntString `json:"sid"`
	GroupID   IntString `json:"gid"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Question  string    `json:"question"`
	Help      string    `json:"help,omitempty"`
	Mandatory string    `json:"mandatory,omitempty"`
	Other     YesNo     `json:"other,omitempty"`
	Order     IntString `json:"question_order"`
	Language  string    `json:"language,omitempty"`
	Relevance string    `json:"relevance,omitempty"`
}

// ParticipantInfo is the personal data subset of a participant record.
type ParticipantInfo struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
}

// Participant is a single entry of the list_participants result.
type Participant struct {
	TID   IntString       `json:"tid"`
	Token string          `json:"token"`
	Info  ParticipantInfo `json:"participant_info"`
}

// Quota is a single entry of the list_quotas result.
type Quota struct {
	ID     IntString `json:"id"`
	Name   string    `json:"name"`
	Limit  IntString `json:"qlimit"`
	Active IntString `json:"active"`
	Action IntString `json:"action"`
}

// User is a single entry of the list_users result.
type User struct {
	UID      IntString `json:"uid"`
	Username string    `json:"users_name"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	ParentID IntString `json:"parent_id"`
}

// UploadedFile is a single entry of the get_uploaded_files result, keyed by
// file ID.  Content is base64; Meta is left untyped as its shape varies with
// the question type that produced the upload.
type UploadedFile struct {
	Meta    map[string]any `json:"meta"`
	Content string         `json:"content"`
}

// DownloadedFile is a decoded survey file, see Client.DownloadFiles.
type DownloadedFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Data []byte `json:"data"`
}
