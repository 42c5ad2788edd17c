package db

import (
	"fmt"
	"strconv"

	"github.com/trumpetlab/arranger/constants"
	"github.com/trumpetlab/arranger/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

const tableName = "arranger-songs"

// Enabled reports whether a metadata store endpoint is configured at all.
func Enabled() bool {
	return constants.GetDynamoEndpoint() != ""
}

func newClient() *dynamodb.DynamoDB {
	endpoint := constants.GetDynamoEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}
	return dynamodb.New(session)
}

func numAttr(n int) *dynamodb.AttributeValue {
	return &dynamodb.AttributeValue{N: aws.String(strconv.Itoa(n))}
}

func strAttr(s string) *dynamodb.AttributeValue {
	return &dynamodb.AttributeValue{S: aws.String(s)}
}

func getStr(item map[string]*dynamodb.AttributeValue, name string) string {
	v, ok := item[name]
	if !ok || v.S == nil {
		return ""
	}
	return *v.S
}

func getNum(item map[string]*dynamodb.AttributeValue, name string) int {
	v, ok := item[name]
	if !ok || v.N == nil {
		return 0
	}
	n, _ := strconv.Atoi(*v.N)
	return n
}

func itemFromEntry(entry model.ArrangementEntry) map[string]*dynamodb.AttributeValue {
	tierMidi := make(map[string]*dynamodb.AttributeValue)
	for tier, path := range entry.TierMidi {
		tierMidi[tier] = strAttr(path)
	}

	return map[string]*dynamodb.AttributeValue{
		"PK":              strAttr(entry.Id),
		"Title":           strAttr(entry.Title),
		"TierMidi":        {M: tierMidi},
		"BackingTrack":    strAttr(entry.BackingTrack),
		"Tempo":           numAttr(entry.Metadata.Tempo),
		"KeySignature":    strAttr(entry.Metadata.KeySignature),
		"TimeSignature":   strAttr(entry.Metadata.TimeSignature),
		"DurationSeconds": numAttr(entry.Metadata.DurationSeconds),
		"TotalNotes":      numAttr(entry.Metadata.TotalNotes),
		"PitchLow":        numAttr(int(entry.Metadata.PitchLow)),
		"PitchHigh":       numAttr(int(entry.Metadata.PitchHigh)),
	}
}

func entryFromItem(item map[string]*dynamodb.AttributeValue) model.ArrangementEntry {
	entry := model.ArrangementEntry{
		Id:           getStr(item, "PK"),
		Title:        getStr(item, "Title"),
		TierMidi:     make(map[model.Tier]string),
		BackingTrack: getStr(item, "BackingTrack"),
		Metadata: model.SongMetadata{
			Tempo:           getNum(item, "Tempo"),
			KeySignature:    getStr(item, "KeySignature"),
			TimeSignature:   getStr(item, "TimeSignature"),
			DurationSeconds: getNum(item, "DurationSeconds"),
			TotalNotes:      getNum(item, "TotalNotes"),
			PitchLow:        uint8(getNum(item, "PitchLow")),
			PitchHigh:       uint8(getNum(item, "PitchHigh")),
		},
	}

	if v, ok := item["TierMidi"]; ok && v.M != nil {
		for tier, attr := range v.M {
			if attr.S != nil {
				entry.TierMidi[tier] = *attr.S
			}
		}
	}
	return entry
}

// PutArrangement stores one processed song's metadata keyed by
// arrangement id.
func PutArrangement(entry model.ArrangementEntry) {
	client := newClient()
	input := &dynamodb.PutItemInput{
		TableName: aws.String(tableName),
		Item:      itemFromEntry(entry),
	}
	_, err := client.PutItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}
}

// GetArrangement reads one song's metadata back by arrangement id.
func GetArrangement(id string) (model.ArrangementEntry, error) {
	client := newClient()
	input := &dynamodb.GetItemInput{
		TableName: aws.String(tableName),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": strAttr(id),
		},
	}
	res, err := client.GetItem(input)
	if err != nil {
		return model.ArrangementEntry{}, err
	}
	if len(res.Item) == 0 {
		return model.ArrangementEntry{}, fmt.Errorf("no arrangement with id %v", id)
	}
	return entryFromItem(res.Item), nil
}
