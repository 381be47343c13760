package utils

import (
	"net/http"

	json "github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

func SendJSONReplyOK(w http.ResponseWriter, replyContent interface{}) {
	SendJSONReplyStatus(w, http.StatusOK, replyContent)
}

func SendJSONReplyStatus(w http.ResponseWriter, status int, replyContent interface{}) {
	toSend, err := json.Marshal(replyContent)
	if err != nil {
		log.Errorf("marshaling reply: %s", err)
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)

	if _, err = w.Write(toSend); err != nil {
		log.Warnf("writing reply: %s", err)
	}
}
