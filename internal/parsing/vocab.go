package parsing

// commonSkills is the whole-word vocabulary mined from job description text.
// Entries are matched case-insensitively on word boundaries.
var commonSkills = []string{
	// languages
	"Python", "Java", "JavaScript", "TypeScript", "Go", "Golang", "Scala",
	"Rust", "C++", "C#", "Ruby", "PHP", "Kotlin", "Swift", "R", "SQL",
	"NoSQL", "Bash", "PowerShell",
	// data platforms and processing
	"Spark", "Apache Spark", "PySpark", "Hadoop", "Hive", "Kafka", "Flink",
	"Airflow", "dbt", "Databricks", "Snowflake", "Redshift", "BigQuery",
	"Delta Lake", "Unity Catalog", "Iceberg", "Presto", "Trino",
	// databases
	"PostgreSQL", "Postgres", "MySQL", "MongoDB", "Cassandra", "DynamoDB",
	"Redis", "Elasticsearch", "Oracle", "SQL Server", "Neo4j",
	// cloud
	"AWS", "Azure", "GCP", "Google Cloud", "S3", "EC2", "Lambda", "Glue",
	"EMR", "Athena", "Azure Data Factory", "ADF", "Synapse", "Fabric",
	// devops and infra
	"Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins", "Git",
	"GitHub", "GitLab", "CI/CD", "Linux", "Helm",
	// analytics and BI
	"Tableau", "Power BI", "Looker", "Excel", "SSIS", "SSRS",
	// concepts
	"ETL", "ELT", "Data Modeling", "Data Warehousing", "Data Warehouse",
	"Data Lake", "Data Governance", "Data Engineering", "Data Pipeline",
	"Machine Learning", "Deep Learning", "NLP", "Data Science",
	"Microservices", "REST", "GraphQL", "API", "Agile", "Scrum",
	// ml and genai
	"TensorFlow", "PyTorch", "scikit-learn", "Pandas", "NumPy", "MLflow",
	"LLM", "LangChain", "RAG", "Hugging Face", "OpenAI",
}

// actionWords are verbs that mark candidate keywords in responsibilities
// text.
var actionWords = []string{
	"design", "build", "develop", "implement", "maintain", "optimize",
	"deploy", "migrate", "automate", "orchestrate", "monitor", "scale",
	"collaborate", "lead", "mentor", "architect", "analyze", "deliver",
	"integrate", "troubleshoot",
}

// roleWords mark a line as a probable job title.
var roleWords = []string{
	"engineer", "developer", "manager", "analyst", "scientist", "designer",
	"architect", "lead", "senior", "junior", "specialist", "consultant",
}

// jobTypes are the employment arrangements recognized verbatim in JD text.
var jobTypes = []string{
	"full-time", "full time", "part-time", "part time", "contract",
	"contract-to-hire", "temporary", "internship", "freelance", "remote",
	"hybrid", "on-site", "onsite",
}
