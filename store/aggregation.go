package store

import "go.mongodb.org/mongo-driver/bson"

// AggregationProject helps generate aggregation object for $project
func AggregationProject(projectCondition bson.M) bson.D {
	project := bson.D{}
	for k, v := range projectCondition {
		project = append(project, bson.E{Key: k, Value: v})
	}

	return bson.D{
		bson.E{Key: "$project", Value: project},
	}
}

// AggregationUnwind helps generate aggregation object for $unwind
func AggregationUnwind(key string) bson.D {
	return bson.D{
		bson.E{Key: "$unwind", Value: key},
	}
}

// AggregationAddFields helps generate aggregation object for $addFields
func AggregationAddFields(fields bson.M) bson.D {
	return bson.D{
		bson.E{Key: "$addFields", Value: fields},
	}
}

// AggregationGroup helps generate aggregation object for $group
func AggregationGroup(id string, groupConditions bson.D) bson.D {
	group := bson.D{bson.E{Key: "_id", Value: id}}
	group = append(group, groupConditions...)

	return bson.D{
		bson.E{Key: "$group", Value: group},
	}
}
