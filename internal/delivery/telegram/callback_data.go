package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionNext       = "next"
	actionAnswer     = "a"
	actionTrain      = "train"
	actionResetTopic = "rtopic"
	actionReset      = "reset"
	actionReview     = "review"
)

const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

// noTopic marks a session over all topics.
const noTopic = -1

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// intParam returns the i-th parameter as an integer.
func (cd callbackData) intParam(i int) (int, bool) {
	if i >= len(cd.Params) {
		return 0, false
	}
	n, err := strconv.Atoi(cd.Params[i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// topicParam returns the optional topic index at position i, or noTopic.
func (cd callbackData) topicParam(i int) int {
	n, ok := cd.intParam(i)
	if !ok || n < 0 {
		return noTopic
	}
	return n
}

// Topics are referenced by index in the sorted topic list to stay
// within the 64 byte callback data limit.

func buildNextCallback(topicIndex int) string {
	if topicIndex == noTopic {
		return actionNext
	}
	return callbackData{Action: actionNext, Params: []string{strconv.Itoa(topicIndex)}}.encode()
}

// buildAnswerCallback encodes a one-based option number.
func buildAnswerCallback(questionID, option, topicIndex int) string {
	params := []string{strconv.Itoa(questionID), strconv.Itoa(option)}
	if topicIndex != noTopic {
		params = append(params, strconv.Itoa(topicIndex))
	}
	return callbackData{Action: actionAnswer, Params: params}.encode()
}

func buildTrainCallback(topicIndex int) string {
	return callbackData{Action: actionTrain, Params: []string{strconv.Itoa(topicIndex)}}.encode()
}

func buildResetTopicCallback(topicIndex int) string {
	return callbackData{Action: actionResetTopic, Params: []string{strconv.Itoa(topicIndex)}}.encode()
}

func buildResetConfirmCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetConfirm}}.encode()
}

func buildResetCancelCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetCancel}}.encode()
}

func buildReviewCallback() string {
	return actionReview
}
