package db

import (
	"strconv"

	"github.com/lriva/percgrid/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetSongMetadatas looks up artist/title/year for up to 10 midi filenames
// at once (BatchGetItem's comfortable batch size for this table). Files
// without a row are simply absent from the result.
func GetSongMetadatas(filenames []string) map[string]model.SongMetadata {
	if len(filenames) > 10 {
		panic("Not supposed to pass in more than 10 filenames!")
	}

	res := make(map[string]model.SongMetadata)

	if len(filenames) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(filename),
		}
		keys = append(keys, key)
	}

	endpoint := "http://localhost:8000"
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			"percgrid-metadata": {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for k, v := range parseSongMetadatas(dbres.Responses["percgrid-metadata"]) {
		res[k] = v
	}

	return res
}

// Rows are allowed to be sparse, so every attribute gets a nil check before
// dereferencing.
func parseSongMetadatas(items []map[string]*dynamodb.AttributeValue) map[string]model.SongMetadata {
	res := make(map[string]model.SongMetadata)
	for _, v := range items {
		if v["PK"] == nil || v["PK"].S == nil {
			continue
		}
		var s model.SongMetadata
		if v["Year"] != nil && v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			s.Year = uint(year)
		}
		if v["Artist"] != nil && v["Artist"].S != nil {
			s.Artist = *v["Artist"].S
		}
		if v["Title"] != nil && v["Title"].S != nil {
			s.Title = *v["Title"].S
		}
		res[*v["PK"].S] = s
	}
	return res
}
